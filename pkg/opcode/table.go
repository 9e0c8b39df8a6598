package opcode

// Shorthand operands for the definition table.
var (
	reg         = Arg{Type: Reg}
	reg32       = Arg{Type: Reg32}
	regSet      = Arg{Type: RegSet}
	i8          = Arg{Type: Int8}
	i16         = Arg{Type: Int16}
	i32         = Arg{Type: Int32}
	f32         = Arg{Type: Float32}
	str         = Arg{Type: CString}
	label16     = Arg{Type: Label16}
	script16    = Arg{Type: Label16, Data: DataScript}
	script16Set = Arg{Type: Label16Set, Data: DataScript}
	script32    = Arg{Type: Label32, Data: DataScript}
	cstrLabel16 = Arg{Type: Label16, Data: DataCString}
	clientID    = Arg{Type: Int32, Name: "client_id"}
	itemID      = Arg{Type: Int32, Name: "item_id"}
	area        = Arg{Type: Int32, Name: "area"}
)

func regs(n int) Arg   { return Arg{Type: RegSetFixed, Count: n} }
func regs32(n int) Arg { return Arg{Type: Reg32SetFixed, Count: n} }

func typed(dt DataType, name string) Arg { return Arg{Type: Label16, Data: dt, Name: name} }

func d(op uint16, name, qedit string, flags uint16, args ...Arg) Def {
	return Def{Opcode: op, Name: name, QEditName: qedit, Args: args, Flags: flags}
}

// defs is the complete opcode dictionary. Opcode numbers repeat when a
// later build changed the operand layout; the flag word keeps the variants
// disjoint per build.
var defs = []Def{
	d(0x0000, "nop", "", FV0V4),
	d(0x0001, "ret", "", FV0V4|FRet), // pops new PC off stack
	d(0x0002, "sync", "", FV0V4),
	d(0x0003, "exit", "", FV0V4, i32),
	d(0x0004, "thread", "", FV0V4, script16),
	d(0x0005, "va_start", "", FV3V4), // pushes r1-r7 to the stack
	d(0x0006, "va_end", "", FV3V4),   // pops r7-r1 from the stack
	d(0x0007, "va_call", "", FV3V4, script16),
	d(0x0008, "let", "", FV0V4, reg, reg),
	d(0x0009, "leti", "", FV0V4, reg, i32),
	d(0x000A, "leta", "", FV0V2, reg, reg),
	d(0x000A, "letb", "", FV3V4, reg, i8),
	d(0x000B, "letw", "", FV3V4, reg, i16),
	d(0x000C, "leta", "", FV3V4, reg, reg),
	d(0x000D, "leto", "", FV3V4, reg, script16),
	d(0x0010, "set", "", FV0V4, reg),
	d(0x0011, "clear", "", FV0V4, reg),
	d(0x0012, "rev", "", FV0V4, reg),
	d(0x0013, "gset", "", FV0V4, i16),
	d(0x0014, "gclear", "", FV0V4, i16),
	d(0x0015, "grev", "", FV0V4, i16),
	d(0x0016, "glet", "", FV0V4, i16, reg),
	d(0x0017, "gget", "", FV0V4, i16, reg),
	d(0x0018, "add", "", FV0V4, reg, reg),
	d(0x0019, "addi", "", FV0V4, reg, i32),
	d(0x001A, "sub", "", FV0V4, reg, reg),
	d(0x001B, "subi", "", FV0V4, reg, i32),
	d(0x001C, "mul", "", FV0V4, reg, reg),
	d(0x001D, "muli", "", FV0V4, reg, i32),
	d(0x001E, "div", "", FV0V4, reg, reg),
	d(0x001F, "divi", "", FV0V4, reg, i32),
	d(0x0020, "and", "", FV0V4, reg, reg),
	d(0x0021, "andi", "", FV0V4, reg, i32),
	d(0x0022, "or", "", FV0V4, reg, reg),
	d(0x0023, "ori", "", FV0V4, reg, i32),
	d(0x0024, "xor", "", FV0V4, reg, reg),
	d(0x0025, "xori", "", FV0V4, reg, i32),
	d(0x0026, "mod", "", FV3V4, reg, reg),
	d(0x0027, "modi", "", FV3V4, reg, i32),
	d(0x0028, "jmp", "", FV0V4, script16),
	d(0x0029, "call", "", FV0V4, script16),
	d(0x002A, "jmp_on", "", FV0V4, script16, regSet),
	d(0x002B, "jmp_off", "", FV0V4, script16, regSet),
	d(0x002C, "jmp_eq", "jmp_=", FV0V4, reg, reg, script16),
	d(0x002D, "jmpi_eq", "jmpi_=", FV0V4, reg, i32, script16),
	d(0x002E, "jmp_ne", "jmp_!=", FV0V4, reg, reg, script16),
	d(0x002F, "jmpi_ne", "jmpi_!=", FV0V4, reg, i32, script16),
	d(0x0030, "ujmp_gt", "ujmp_>", FV0V4, reg, reg, script16),
	d(0x0031, "ujmpi_gt", "ujmpi_>", FV0V4, reg, i32, script16),
	d(0x0032, "jmp_gt", "jmp_>", FV0V4, reg, reg, script16),
	d(0x0033, "jmpi_gt", "jmpi_>", FV0V4, reg, i32, script16),
	d(0x0034, "ujmp_lt", "ujmp_<", FV0V4, reg, reg, script16),
	d(0x0035, "ujmpi_lt", "ujmpi_<", FV0V4, reg, i32, script16),
	d(0x0036, "jmp_lt", "jmp_<", FV0V4, reg, reg, script16),
	d(0x0037, "jmpi_lt", "jmpi_<", FV0V4, reg, i32, script16),
	d(0x0038, "ujmp_ge", "ujmp_>=", FV0V4, reg, reg, script16),
	d(0x0039, "ujmpi_ge", "ujmpi_>=", FV0V4, reg, i32, script16),
	d(0x003A, "jmp_ge", "jmp_>=", FV0V4, reg, reg, script16),
	d(0x003B, "jmpi_ge", "jmpi_>=", FV0V4, reg, i32, script16),
	d(0x003C, "ujmp_le", "ujmp_<=", FV0V4, reg, reg, script16),
	d(0x003D, "ujmpi_le", "ujmpi_<=", FV0V4, reg, i32, script16),
	d(0x003E, "jmp_le", "jmp_<=", FV0V4, reg, reg, script16),
	d(0x003F, "jmpi_le", "jmpi_<=", FV0V4, reg, i32, script16),
	d(0x0040, "switch_jmp", "", FV0V4, reg, script16Set),
	d(0x0041, "switch_call", "", FV0V4, reg, script16Set),
	d(0x0042, "nop_42", "", FV0V2, i32),
	d(0x0042, "stack_push", "", FV3V4, reg),
	d(0x0043, "stack_pop", "", FV3V4, reg),
	d(0x0044, "stack_pushm", "", FV3V4, reg, i32),
	d(0x0045, "stack_popm", "", FV3V4, reg, i32),
	d(0x0048, "arg_pushr", "", FV3V4|FPass, reg),
	d(0x0049, "arg_pushl", "", FV3V4|FPass, i32),
	d(0x004A, "arg_pushb", "", FV3V4|FPass, i8),
	d(0x004B, "arg_pushw", "", FV3V4|FPass, i16),
	d(0x004C, "arg_pusha", "", FV3V4|FPass, reg), // pushes the address of regA
	d(0x004D, "arg_pusho", "", FV3V4|FPass, label16),
	d(0x004E, "arg_pushs", "", FV3V4|FPass, str),
	d(0x0050, "message", "", FV0V4|FArgs, i32, str),
	d(0x0051, "list", "", FV0V4|FArgs, reg, str),
	d(0x0052, "fadein", "", FV0V4),
	d(0x0053, "fadeout", "", FV0V4),
	d(0x0054, "se", "", FV0V4|FArgs, i32),
	d(0x0055, "bgm", "", FV0V4|FArgs, i32),
	d(0x0056, "nop_56", "", FV0V2),
	d(0x0057, "nop_57", "", FV0V2),
	d(0x0058, "nop_58", "enable", FV0V2, i32),
	d(0x0059, "nop_59", "disable", FV0V2, i32),
	d(0x005A, "window_msg", "", FV0V4|FArgs, str),
	d(0x005B, "add_msg", "", FV0V4|FArgs, str),
	d(0x005C, "mesend", "", FV0V4),
	d(0x005D, "gettime", "", FV0V4, reg),
	d(0x005E, "winend", "", FV0V4),
	d(0x0060, "npc_crt", "npc_crt_V1", FV0V2|FArgs, i32, i32),
	d(0x0060, "npc_crt", "npc_crt_V3", FV3V4|FArgs, i32, i32),
	d(0x0061, "npc_stop", "", FV0V4|FArgs, i32),
	d(0x0062, "npc_play", "", FV0V4|FArgs, i32),
	d(0x0063, "npc_kill", "", FV0V4|FArgs, i32),
	d(0x0064, "npc_nont", "", FV0V4),
	d(0x0065, "npc_talk", "", FV0V4),
	d(0x0066, "npc_crp", "npc_crp_V1", FV0V2, regs(6), i32),
	d(0x0066, "npc_crp", "npc_crp_V3", FV3V4, regs(6)),
	d(0x0068, "create_pipe", "", FV0V4|FArgs, i32),
	d(0x0069, "p_hpstat", "p_hpstat_V1", FV0V2|FArgs, reg, clientID),
	d(0x0069, "p_hpstat", "p_hpstat_V3", FV3V4|FArgs, reg, clientID),
	d(0x006A, "p_dead", "p_dead_V1", FV0V2|FArgs, reg, clientID),
	d(0x006A, "p_dead", "p_dead_V3", FV3V4|FArgs, reg, clientID),
	d(0x006B, "p_disablewarp", "", FV0V4),
	d(0x006C, "p_enablewarp", "", FV0V4),
	d(0x006D, "p_move", "p_move_v1", FV0V2, regs(5), i32),
	d(0x006D, "p_move", "p_move_V3", FV3V4, regs(5)),
	d(0x006E, "p_look", "", FV0V4|FArgs, clientID),
	d(0x0070, "p_action_disable", "", FV0V4),
	d(0x0071, "p_action_enable", "", FV0V4),
	d(0x0072, "disable_movement1", "", FV0V4|FArgs, clientID),
	d(0x0073, "enable_movement1", "", FV0V4|FArgs, clientID),
	d(0x0074, "p_noncol", "", FV0V4),
	d(0x0075, "p_col", "", FV0V4),
	d(0x0076, "p_setpos", "", FV0V4|FArgs, clientID, regs(4)),
	d(0x0077, "p_return_guild", "", FV0V4),
	d(0x0078, "p_talk_guild", "", FV0V4|FArgs, clientID),
	d(0x0079, "npc_talk_pl", "npc_talk_pl_V1", FV0V2, regs32(8)),
	d(0x0079, "npc_talk_pl", "npc_talk_pl_V3", FV3V4, regs(8)),
	d(0x007A, "npc_talk_kill", "", FV0V4|FArgs, i32),
	d(0x007B, "npc_crtpk", "npc_crtpk_V1", FV0V2|FArgs, i32, i32),
	d(0x007B, "npc_crtpk", "npc_crtpk_V3", FV3V4|FArgs, i32, i32),
	d(0x007C, "npc_crppk", "npc_crppk_V1", FV0V2, regs32(7), i32),
	d(0x007C, "npc_crppk", "npc_crppk_V3", FV3V4, regs(7)),
	d(0x007D, "npc_crptalk", "npc_crptalk_v1", FV0V2, regs32(6), i32),
	d(0x007D, "npc_crptalk", "npc_crptalk_V3", FV3V4, regs(6)),
	d(0x007E, "p_look_at", "", FV0V4|FArgs, clientID, clientID),
	d(0x007F, "npc_crp_id", "npc_crp_id_V1", FV0V2, regs32(7), i32),
	d(0x007F, "npc_crp_id", "npc_crp_id_v3", FV3V4, regs(7)),
	d(0x0080, "cam_quake", "", FV0V4),
	d(0x0081, "cam_adj", "", FV0V4),
	d(0x0082, "cam_zmin", "", FV0V4),
	d(0x0083, "cam_zmout", "", FV0V4),
	d(0x0084, "cam_pan", "cam_pan_V1", FV0V2, regs32(5), i32),
	d(0x0084, "cam_pan", "cam_pan_V3", FV3V4, regs(5)),
	d(0x0085, "game_lev_super", "", FV0V2),
	d(0x0085, "nop_85", "", FV3V4),
	d(0x0086, "game_lev_reset", "", FV0V2),
	d(0x0086, "nop_86", "", FV3V4),
	d(0x0087, "pos_pipe", "pos_pipe_V1", FV0V2, regs32(4), i32),
	d(0x0087, "pos_pipe", "pos_pipe_V3", FV3V4, regs(4)),
	d(0x0088, "if_zone_clear", "", FV0V4, reg, regs(2)),
	d(0x0089, "chk_ene_num", "", FV0V4, reg),
	d(0x008A, "unhide_obj", "", FV0V4, regs(3)),
	d(0x008B, "unhide_ene", "", FV0V4, regs(3)),
	d(0x008C, "at_coords_call", "", FV0V4, regs(5)),
	d(0x008D, "at_coords_talk", "", FV0V4, regs(5)),
	d(0x008E, "npc_coords_call", "", FV0V4, regs(5)),
	d(0x008F, "party_coords_call", "", FV0V4, regs(6)),
	d(0x0090, "switch_on", "", FV0V4|FArgs, i32),
	d(0x0091, "switch_off", "", FV0V4|FArgs, i32),
	d(0x0092, "playbgm_epi", "", FV0V4|FArgs, i32),
	d(0x0093, "set_mainwarp", "", FV0V4|FArgs, i32),
	d(0x0094, "set_obj_param", "", FV0V4, regs(6), reg),
	d(0x0095, "set_floor_handler", "", FV0V2, area, script32),
	d(0x0095, "set_floor_handler", "", FV3V4|FArgs, area, script16),
	d(0x0096, "clr_floor_handler", "", FV0V4|FArgs, area),
	d(0x0097, "npc_check_straggle", "", FV1V4, regs(9)),
	d(0x0098, "hud_hide", "", FV0V4),
	d(0x0099, "hud_show", "", FV0V4),
	d(0x009A, "cine_enable", "", FV0V4),
	d(0x009B, "cine_disable", "", FV0V4),
	d(0x00A0, "nop_A0_debug", "", FV0V4|FArgs, i32, str),
	d(0x00A1, "set_qt_failure", "", FV0V2, script32),
	d(0x00A1, "set_qt_failure", "", FV3V4, script16),
	d(0x00A2, "set_qt_success", "", FV0V2, script32),
	d(0x00A2, "set_qt_success", "", FV3V4, script16),
	d(0x00A3, "clr_qt_failure", "", FV0V4),
	d(0x00A4, "clr_qt_success", "", FV0V4),
	d(0x00A5, "set_qt_cancel", "", FV0V2, script32),
	d(0x00A5, "set_qt_cancel", "", FV3V4, script16),
	d(0x00A6, "clr_qt_cancel", "", FV0V4),
	d(0x00A8, "pl_walk", "pl_walk_V1", FV0V2, regs32(4), i32),
	d(0x00A8, "pl_walk", "pl_walk_V3", FV3V4, regs(4)),
	d(0x00B0, "pl_add_meseta", "", FV0V4|FArgs, clientID, i32),
	d(0x00B1, "thread_stg", "", FV0V4, script16),
	d(0x00B2, "del_obj_param", "", FV0V4, reg),
	d(0x00B3, "item_create", "", FV0V4, regs(3), reg),
	d(0x00B4, "item_create2", "", FV0V4, regs(12), reg),
	d(0x00B5, "item_delete", "", FV0V4, reg, regs(12)),
	d(0x00B6, "item_delete2", "", FV0V4, regs(3), regs(12)),
	d(0x00B7, "item_check", "", FV0V4, regs(3), reg),
	d(0x00B8, "setevt", "", FV05V4|FArgs, i32),
	d(0x00B9, "get_difficulty_level_v1", "get_difflvl", FV05V4, reg),
	d(0x00BA, "set_qt_exit", "", FV05V2, script32),
	d(0x00BA, "set_qt_exit", "", FV3V4, script16),
	d(0x00BB, "clr_qt_exit", "", FV05V4),
	d(0x00BC, "nop_BC", "", FV05V4, str),
	d(0x00C0, "particle", "particle_V1", FV05V2, regs32(5), i32),
	d(0x00C0, "particle", "particle_V3", FV3V4, regs(5)),
	d(0x00C1, "npc_text", "", FV05V4|FArgs, i32, str),
	d(0x00C2, "npc_chkwarp", "", FV05V4),
	d(0x00C3, "pl_pkoff", "", FV05V4),
	d(0x00C4, "map_designate", "", FV05V4, regs(4)),
	d(0x00C5, "masterkey_on", "", FV05V4),
	d(0x00C6, "masterkey_off", "", FV05V4),
	d(0x00C7, "window_time", "", FV05V4),
	d(0x00C8, "winend_time", "", FV05V4),
	d(0x00C9, "winset_time", "", FV05V4, reg),
	d(0x00CA, "getmtime", "", FV05V4, reg),
	d(0x00CB, "set_quest_board_handler", "", FV05V2, i32, script32, str),
	d(0x00CB, "set_quest_board_handler", "", FV3V4|FArgs, i32, script16, str),
	d(0x00CC, "clear_quest_board_handler", "", FV05V4|FArgs, i32),
	d(0x00CD, "particle_id", "particle_id_V1", FV05V2, regs32(4), i32),
	d(0x00CD, "particle_id", "particle_id_V3", FV3V4, regs(4)),
	d(0x00CE, "npc_crptalk_id", "npc_crptalk_id_V1", FV05V2, regs32(7), i32),
	d(0x00CE, "npc_crptalk_id", "npc_crptalk_id_V3", FV3V4, regs(7)),
	d(0x00CF, "npc_lang_clean", "", FV05V4),
	d(0x00D0, "pl_pkon", "", FV1V4),
	d(0x00D1, "pl_chk_item2", "", FV1V4, regs(4), reg),
	d(0x00D2, "enable_mainmenu", "", FV1V4),
	d(0x00D3, "disable_mainmenu", "", FV1V4),
	d(0x00D4, "start_battlebgm", "", FV1V4),
	d(0x00D5, "end_battlebgm", "", FV1V4),
	d(0x00D6, "disp_msg_qb", "", FV1V4|FArgs, str),
	d(0x00D7, "close_msg_qb", "", FV1V4),
	d(0x00D8, "set_eventflag", "set_eventflag_v1", FV1V2|FArgs, i32, i32),
	d(0x00D8, "set_eventflag", "set_eventflag_v3", FV3V4|FArgs, i32, i32),
	d(0x00D9, "sync_register", "sync_leti", FV1V4|FArgs, i32, i32),
	d(0x00DA, "set_returnhunter", "", FV1V4),
	d(0x00DB, "set_returncity", "", FV1V4),
	d(0x00DC, "load_pvr", "", FV1V4),
	d(0x00DD, "load_midi", "", FV1V4),
	d(0x00DE, "item_detect_bank", "unknownDE", FV1V4, regs(6), reg),
	d(0x00DF, "npc_param", "npc_param_V1", FV1V2, regs32(14), i32),
	d(0x00DF, "npc_param", "npc_param_V3", FV3V4|FArgs, regs(14), i32),
	d(0x00E0, "pad_dragon", "", FV1V4),
	d(0x00E1, "clear_mainwarp", "", FV1V4|FArgs, i32),
	d(0x00E2, "pcam_param", "pcam_param_V1", FV1V2, regs32(6)),
	d(0x00E2, "pcam_param", "pcam_param_V3", FV3V4, regs(6)),
	d(0x00E3, "start_setevt", "start_setevt_v1", FV1V2|FArgs, i32, i32),
	d(0x00E3, "start_setevt", "start_setevt_v3", FV3V4|FArgs, i32, i32),
	d(0x00E4, "warp_on", "", FV1V4),
	d(0x00E5, "warp_off", "", FV1V4),
	d(0x00E6, "get_client_id", "get_slotnumber", FV1V4, reg),
	d(0x00E7, "get_leader_id", "get_servernumber", FV1V4, reg),
	d(0x00E8, "set_eventflag2", "", FV1V4|FArgs, i32, reg),
	d(0x00E9, "mod2", "res", FV1V4, reg, reg),
	d(0x00EA, "modi2", "unknownEA", FV1V4, reg, i32),
	d(0x00EB, "enable_bgmctrl", "", FV1V4|FArgs, i32),
	d(0x00EC, "sw_send", "", FV1V4, regs(3)),
	d(0x00ED, "create_bgmctrl", "", FV1V4),
	d(0x00EE, "pl_add_meseta2", "", FV1V4|FArgs, i32),
	d(0x00EF, "sync_register2", "sync_let", FV1V2, i32, reg32),
	d(0x00EF, "sync_register2", "", FV3V4|FArgs, reg, i32),
	d(0x00F0, "send_regwork", "", FV1V2, reg32, reg32),
	d(0x00F1, "leti_fixed_camera", "leti_fixed_camera_V1", FV2, regs32(6)),
	d(0x00F1, "leti_fixed_camera", "leti_fixed_camera_V3", FV3V4, regs(6)),
	d(0x00F2, "default_camera_pos1", "", FV2V4),
	d(0xF800, "debug_F800", "", FV2),
	d(0xF801, "set_chat_callback", "set_chat_callback?", FV2V4|FArgs, regs32(5), str),
	d(0xF808, "get_difficulty_level_v2", "get_difflvl2", FV2V4, reg),
	d(0xF809, "get_number_of_players", "get_number_of_player1", FV2V4, reg),
	d(0xF80A, "get_coord_of_player", "", FV2V4, regs(3), reg),
	d(0xF80B, "enable_map", "", FV2V4),
	d(0xF80C, "disable_map", "", FV2V4),
	d(0xF80D, "map_designate_ex", "", FV2V4, regs(5)),
	d(0xF80E, "disable_weapon_drop", "unknownF80E", FV2V4|FArgs, clientID),
	d(0xF80F, "enable_weapon_drop", "unknownF80F", FV2V4|FArgs, clientID),
	d(0xF810, "ba_initial_floor", "", FV2V4|FArgs, area),
	d(0xF811, "set_ba_rules", "", FV2V4),
	d(0xF812, "ba_set_tech_disk_mode", "ba_set_tech", FV2V4|FArgs, i32),
	d(0xF813, "ba_set_weapon_and_armor_mode", "ba_set_equip", FV2V4|FArgs, i32),
	d(0xF814, "ba_set_forbid_mags", "ba_set_mag", FV2V4|FArgs, i32),
	d(0xF815, "ba_set_tool_mode", "ba_set_item", FV2V4|FArgs, i32),
	d(0xF816, "ba_set_trap_mode", "ba_set_trapmenu", FV2V4|FArgs, i32),
	d(0xF817, "ba_set_unused_F817", "unknownF817", FV2V4|FArgs, i32),
	d(0xF818, "ba_set_respawn", "", FV2V4|FArgs, i32),
	d(0xF819, "ba_set_replace_char", "ba_set_char", FV2V4|FArgs, i32),
	d(0xF81A, "ba_dropwep", "", FV2V4|FArgs, i32),
	d(0xF81B, "ba_teams", "", FV2V4|FArgs, i32),
	d(0xF81C, "ba_start", "ba_disp_msg", FV2V4|FArgs, str),
	d(0xF81D, "death_lvl_up", "", FV2V4|FArgs, i32),
	d(0xF81E, "ba_set_meseta_drop_mode", "ba_set_meseta", FV2V4|FArgs, i32),
	d(0xF820, "cmode_stage", "", FV2V4|FArgs, i32),
	d(0xF821, "nop_F821", "", FV2V4, regs(9)),
	d(0xF822, "nop_F822", "", FV2V4, reg),
	d(0xF823, "set_cmode_char_template", "", FV2V4|FArgs, i32),
	d(0xF824, "set_cmode_difficulty", "set_cmode_diff", FV2V4|FArgs, i32),
	d(0xF825, "exp_multiplication", "", FV2V4, regs(3)),
	d(0xF826, "if_player_alive_cm", "exp_division?", FV2V4, reg),
	d(0xF827, "get_user_is_dead", "get_user_is_dead?", FV2V4, reg),
	d(0xF828, "go_floor", "", FV2V4, reg, reg),
	d(0xF829, "get_num_kills", "", FV2V4, reg, reg),
	d(0xF82A, "reset_kills", "", FV2V4, reg),
	d(0xF82B, "unlock_door2", "", FV2V4|FArgs, i32, i32),
	d(0xF82C, "lock_door2", "", FV2V4|FArgs, i32, i32),
	d(0xF82D, "if_switch_not_pressed", "", FV2V4, regs(2)),
	d(0xF82E, "if_switch_pressed", "", FV2V4, regs(3)),
	d(0xF830, "control_dragon", "", FV2V4, reg),
	d(0xF831, "release_dragon", "", FV2V4),
	d(0xF838, "shrink", "", FV2V4, reg),
	d(0xF839, "unshrink", "", FV2V4, reg),
	d(0xF83A, "set_shrink_cam1", "", FV2V4, regs(4)),
	d(0xF83B, "set_shrink_cam2", "", FV2V4, regs(4)),
	d(0xF83C, "display_clock2", "display_clock2?", FV2V4, reg),
	d(0xF83D, "set_area_total", "unknownF83D", FV2V4|FArgs, i32),
	d(0xF83E, "delete_area_title", "delete_area_title?", FV2V4|FArgs, i32),
	d(0xF840, "load_npc_data", "", FV2V4),
	d(0xF841, "get_npc_data", "", FV2V4, typed(DataPlayerVisualConfig, "visual_config")),
	d(0xF848, "give_damage_score", "", FV2V4, regs(3)),
	d(0xF849, "take_damage_score", "", FV2V4, regs(3)),
	d(0xF84A, "enemy_give_score", "unk_score_F84A", FV2V4, regs(3)),
	d(0xF84B, "enemy_take_score", "unk_score_F84B", FV2V4, regs(3)),
	d(0xF84C, "kill_score", "", FV2V4, regs(3)),
	d(0xF84D, "death_score", "", FV2V4, regs(3)),
	d(0xF84E, "enemy_kill_score", "unk_score_F84E", FV2V4, regs(3)),
	d(0xF84F, "enemy_death_score", "", FV2V4, regs(3)),
	d(0xF850, "meseta_score", "", FV2V4, regs(3)),
	d(0xF851, "ba_set_trap_count", "unknownF851", FV2V4, regs(2)),
	d(0xF852, "ba_set_target", "unknownF852", FV2V4|FArgs, i32),
	d(0xF853, "reverse_warps", "", FV2V4),
	d(0xF854, "unreverse_warps", "", FV2V4),
	d(0xF855, "set_ult_map", "", FV2V4),
	d(0xF856, "unset_ult_map", "", FV2V4),
	d(0xF857, "set_area_title", "", FV2V4|FArgs, str),
	d(0xF858, "ba_show_self_traps", "BA_Show_Self_Traps", FV2V4),
	d(0xF859, "ba_hide_self_traps", "BA_Hide_Self_Traps", FV2V4),
	d(0xF85A, "equip_item", "equip_item_v2", FV2, regs32(4)),
	d(0xF85A, "equip_item", "equip_item_v3", FV3V4, regs(4)),
	d(0xF85B, "unequip_item", "unequip_item_V2", FV2|FArgs, clientID, i32),
	d(0xF85B, "unequip_item", "unequip_item_V3", FV3V4|FArgs, clientID, i32),
	d(0xF85C, "qexit2", "QEXIT2", FV2V4, i32),
	d(0xF85D, "set_allow_item_flags", "unknownF85D", FV2V4|FArgs, i32),
	d(0xF85E, "ba_enable_sonar", "unknownF85E", FV2V4|FArgs, i32),
	d(0xF85F, "ba_use_sonar", "unknownF85F", FV2V4|FArgs, i32),
	d(0xF860, "clear_score_announce", "unknownF860", FV2V4),
	d(0xF861, "set_score_announce", "unknownF861", FV2V4|FArgs, i32),
	d(0xF862, "give_s_rank_weapon", "", FV2, reg32, reg32, str),
	d(0xF862, "give_s_rank_weapon", "", FV3V4|FArgs, i32, reg, str),
	d(0xF863, "get_mag_levels", "", FV2, regs32(4)),
	d(0xF863, "get_mag_levels", "", FV3V4, regs(4)),
	d(0xF864, "set_cmode_rank_result", "cmode_rank", FV2V4|FArgs, i32, str),
	d(0xF865, "award_item_name", "award_item_name?", FV2V4),
	d(0xF866, "award_item_select", "award_item_select?", FV2V4),
	d(0xF867, "award_item_give_to", "award_item_give_to?", FV2V4, reg),
	d(0xF868, "set_cmode_rank_threshold", "set_cmode_rank", FV2V4, reg, reg),
	d(0xF869, "check_rank_time", "", FV2V4, reg, reg),
	d(0xF86A, "item_create_cmode", "", FV2V4, regs(6), reg),
	d(0xF86B, "ba_set_box_drop_area", "ba_box_drops", FV2V4, reg),
	d(0xF86C, "award_item_ok", "award_item_ok?", FV2V4, reg),
	d(0xF86D, "ba_set_trapself", "", FV2V4),
	d(0xF86E, "ba_clear_trapself", "unknownF86E", FV2V4),
	d(0xF86F, "ba_set_lives", "", FV2V4|FArgs, i32),
	d(0xF870, "ba_set_max_tech_level", "ba_set_tech_lvl", FV2V4|FArgs, i32),
	d(0xF871, "ba_set_char_level", "ba_set_lvl", FV2V4|FArgs, i32),
	d(0xF872, "ba_set_time_limit", "", FV2V4|FArgs, i32),
	d(0xF873, "dark_falz_is_dead", "boss_is_dead?", FV2V4, reg),
	d(0xF874, "set_cmode_rank_override", "", FV2V4|FArgs, i32, str),
	d(0xF875, "enable_stealth_suit_effect", "", FV2V4, reg),
	d(0xF876, "disable_stealth_suit_effect", "", FV2V4, reg),
	d(0xF877, "enable_techs", "", FV2V4, reg),
	d(0xF878, "disable_techs", "", FV2V4, reg),
	d(0xF879, "get_gender", "", FV2V4, reg, reg),
	d(0xF87A, "get_chara_class", "", FV2V4, reg, regs(2)),
	d(0xF87B, "take_slot_meseta", "", FV2V4, regs(2), reg),
	d(0xF87C, "get_guild_card_file_creation_time", "", FV2V4, reg),
	d(0xF87D, "kill_player", "", FV2V4, reg),
	d(0xF87E, "get_serial_number", "", FV2V4, reg),
	d(0xF87F, "get_eventflag", "read_guildcard_flag", FV2V4, reg, reg),
	d(0xF880, "set_trap_damage", "unknownF880", FV2V4, regs(3)),
	d(0xF881, "get_pl_name", "get_pl_name?", FV2V4, reg),
	d(0xF882, "get_pl_job", "", FV2V4, reg),
	d(0xF883, "get_player_proximity", "unknownF883", FV2V4, regs(2), reg),
	d(0xF884, "set_eventflag16", "", FV2, i32, reg),
	d(0xF884, "set_eventflag16", "", FV3V4|FArgs, i32, i32),
	d(0xF885, "set_eventflag32", "", FV2, i32, reg),
	d(0xF885, "set_eventflag32", "", FV3V4|FArgs, i32, i32),
	d(0xF886, "ba_get_place", "", FV2V4, reg, reg),
	d(0xF887, "ba_get_score", "", FV2V4, reg, reg),
	d(0xF888, "enable_win_pfx", "ba_close_msg", FV2V4),
	d(0xF889, "disable_win_pfx", "", FV2V4),
	d(0xF88A, "get_player_status", "", FV2V4, reg, reg),
	d(0xF88B, "send_mail", "", FV2V4|FArgs, reg, str),
	d(0xF88C, "get_game_version", "", FV2V4, reg),
	d(0xF88D, "chl_set_timerecord", "chl_set_timerecord?", FV2|FV3, reg),
	d(0xF88D, "chl_set_timerecord", "chl_set_timerecord?", FV4, reg, reg),
	d(0xF88E, "chl_get_timerecord", "chl_get_timerecord?", FV2V4, reg),
	d(0xF88F, "set_cmode_grave_rates", "", FV2V4, regs(20)),
	d(0xF890, "clear_mainwarp_all", "unknownF890", FV2V4),
	d(0xF891, "load_enemy_data", "", FV2V4|FArgs, i32),
	d(0xF892, "get_physical_data", "", FV2V4, typed(DataPlayerStats, "stats")),
	d(0xF893, "get_attack_data", "", FV2V4, typed(DataAttackData, "attack_data")),
	d(0xF894, "get_resist_data", "", FV2V4, typed(DataResistData, "resist_data")),
	d(0xF895, "get_movement_data", "", FV2V4, typed(DataMovementData, "movement_data")),
	d(0xF896, "get_eventflag16", "", FV2V4, reg, reg),
	d(0xF897, "get_eventflag32", "", FV2V4, reg, reg),
	d(0xF898, "shift_left", "", FV2V4, reg, reg),
	d(0xF899, "shift_right", "", FV2V4, reg, reg),
	d(0xF89A, "get_random", "", FV2V4, regs(2), reg),
	d(0xF89B, "reset_map", "", FV2V4),
	d(0xF89C, "disp_chl_retry_menu", "", FV2V4, reg),
	d(0xF89D, "chl_reverser", "chl_reverser?", FV2V4),
	d(0xF89E, "ba_forbid_scape_dolls", "unknownF89E", FV2V4|FArgs, i32),
	d(0xF89F, "player_recovery", "unknownF89F", FV2V4, reg),
	d(0xF8A0, "disable_bosswarp_option", "unknownF8A0", FV2V4),
	d(0xF8A1, "enable_bosswarp_option", "unknownF8A1", FV2V4),
	d(0xF8A2, "is_bosswarp_opt_disabled", "", FV2V4, reg),
	d(0xF8A3, "load_serial_number_to_flag_buf", "init_online_key?", FV2V4),
	d(0xF8A4, "write_flag_buf_to_event_flags", "encrypt_gc_entry_auto", FV2V4, reg),
	d(0xF8A5, "set_chat_callback_no_filter", "", FV2V4, regs(5)),
	d(0xF8A6, "set_symbol_chat_collision", "", FV2V4, regs(10)),
	d(0xF8A7, "set_shrink_size", "", FV2V4, reg, regs(3)),
	d(0xF8A8, "death_tech_lvl_up2", "", FV2V4|FArgs, i32),
	d(0xF8A9, "vol_opt_is_dead", "unknownF8A9", FV2V4, reg),
	d(0xF8AA, "is_there_grave_message", "", FV2V4, reg),
	d(0xF8AB, "get_ba_record", "", FV2V4, regs(7)),
	d(0xF8AC, "get_cmode_prize_rank", "", FV2V4, reg),
	d(0xF8AD, "get_number_of_players2", "", FV2V4, reg),
	d(0xF8AE, "party_has_name", "", FV2V4, reg),
	d(0xF8AF, "someone_has_spoken", "", FV2V4, reg),
	d(0xF8B0, "read1", "", FV2, reg, reg),
	d(0xF8B0, "read1", "", FV3V4|FArgs, reg, i32),
	d(0xF8B1, "read2", "", FV2, reg, reg),
	d(0xF8B1, "read2", "", FV3V4|FArgs, reg, i32),
	d(0xF8B2, "read4", "", FV2, reg, reg),
	d(0xF8B2, "read4", "", FV3V4|FArgs, reg, i32),
	d(0xF8B3, "write1", "", FV2, reg, reg),
	d(0xF8B3, "write1", "", FV3V4|FArgs, i32, i32),
	d(0xF8B4, "write2", "", FV2, reg, reg),
	d(0xF8B4, "write2", "", FV3V4|FArgs, i32, i32),
	d(0xF8B5, "write4", "", FV2, reg, reg),
	d(0xF8B5, "write4", "", FV3V4|FArgs, i32, i32),
	d(0xF8B6, "check_for_hacking", "", FV2V4, reg),
	d(0xF8B7, "unknown_F8B7", "", FV2V4, reg),
	d(0xF8B8, "disable_retry_menu", "unknownF8B8", FV2V4),
	d(0xF8B9, "chl_recovery", "chl_recovery?", FV2V4),
	d(0xF8BA, "load_guild_card_file_creation_time_to_flag_buf", "", FV2V4),
	d(0xF8BB, "write_flag_buf_to_event_flags2", "", FV2V4, reg),
	d(0xF8BC, "set_episode", "", FV3V4|FSetEpisode, i32),
	d(0xF8C0, "file_dl_req", "", FV3|FArgs, i32, str),
	d(0xF8C0, "nop_F8C0", "", FV4|FArgs, i32, str),
	d(0xF8C1, "get_dl_status", "", FV3, reg),
	d(0xF8C1, "nop_F8C1", "", FV4, reg),
	d(0xF8C2, "prepare_gba_rom_from_download", "gba_unknown4?", FGCV3|FGCEp3NTE|FGCEp3),
	d(0xF8C2, "nop_F8C2", "", FXBV3|FV4),
	d(0xF8C3, "start_or_update_gba_joyboot", "get_gba_state?", FGCV3|FGCEp3NTE|FGCEp3, reg),
	d(0xF8C3, "return_0_F8C3", "", FXBV3, reg),
	d(0xF8C3, "nop_F8C3", "", FV4, reg),
	d(0xF8C4, "congrats_msg_multi_cm", "unknownF8C4", FV3, reg),
	d(0xF8C4, "nop_F8C4", "", FV4, reg),
	d(0xF8C5, "stage_end_multi_cm", "unknownF8C5", FV3, reg),
	d(0xF8C5, "nop_F8C5", "", FV4, reg),
	d(0xF8C6, "qexit", "QEXIT", FV3V4),
	d(0xF8C7, "use_animation", "", FV3V4, reg, reg),
	d(0xF8C8, "stop_animation", "", FV3V4, reg),
	d(0xF8C9, "run_to_coord", "", FV3V4, regs(4), reg),
	d(0xF8CA, "set_slot_invincible", "", FV3V4, reg, reg),
	d(0xF8CB, "clear_slot_invincible", "unknownF8CB", FV3V4, reg),
	d(0xF8CC, "set_slot_poison", "", FV3V4, reg),
	d(0xF8CD, "set_slot_paralyze", "", FV3V4, reg),
	d(0xF8CE, "set_slot_shock", "", FV3V4, reg),
	d(0xF8CF, "set_slot_freeze", "", FV3V4, reg),
	d(0xF8D0, "set_slot_slow", "", FV3V4, reg),
	d(0xF8D1, "set_slot_confuse", "", FV3V4, reg),
	d(0xF8D2, "set_slot_shifta", "", FV3V4, reg),
	d(0xF8D3, "set_slot_deband", "", FV3V4, reg),
	d(0xF8D4, "set_slot_jellen", "", FV3V4, reg),
	d(0xF8D5, "set_slot_zalure", "", FV3V4, reg),
	d(0xF8D6, "fleti_fixed_camera", "", FV3V4|FArgs, regs(6)),
	d(0xF8D7, "fleti_locked_camera", "", FV3V4|FArgs, i32, regs(3)),
	d(0xF8D8, "default_camera_pos2", "", FV3V4),
	d(0xF8D9, "set_motion_blur", "", FV3V4),
	d(0xF8DA, "set_screen_bw", "set_screen_b&w", FV3V4),
	d(0xF8DB, "get_vector_from_path", "unknownF8DB", FV3V4|FArgs, i32, f32, f32, i32, regs(4), script16),
	d(0xF8DC, "npc_action_string", "NPC_action_string", FV3V4, reg, reg, cstrLabel16),
	d(0xF8DD, "get_pad_cond", "", FV3V4, reg, reg),
	d(0xF8DE, "get_button_cond", "", FV3V4, reg, reg),
	d(0xF8DF, "freeze_enemies", "", FV3V4),
	d(0xF8E0, "unfreeze_enemies", "", FV3V4),
	d(0xF8E1, "freeze_everything", "", FV3V4),
	d(0xF8E2, "unfreeze_everything", "", FV3V4),
	d(0xF8E3, "restore_hp", "", FV3V4, reg),
	d(0xF8E4, "restore_tp", "", FV3V4, reg),
	d(0xF8E5, "close_chat_bubble", "", FV3V4, reg),
	d(0xF8E6, "move_coords_object", "unknownF8E6", FV3V4, reg, regs(3)),
	d(0xF8E7, "at_coords_call_ex", "unknownF8E7", FV3V4, regs(5), reg),
	d(0xF8E8, "at_coords_talk_ex", "unknownF8E8", FV3V4, regs(5), reg),
	d(0xF8E9, "walk_to_coord_call_ex", "unknownF8E9", FV3V4, regs(5), reg),
	d(0xF8EA, "col_npcinr_ex", "unknownF8EA", FV3V4, regs(6), reg),
	d(0xF8EB, "set_obj_param_ex", "unknownF8EB", FV3V4, regs(6), reg),
	d(0xF8EC, "col_plinaw_ex", "unknownF8EC", FV3V4, regs(9), reg),
	d(0xF8ED, "animation_check", "", FV3V4, reg, reg),
	d(0xF8EE, "call_image_data", "", FV3V4|FArgs, i32, Arg{Type: Label16, Data: DataImageData}),
	d(0xF8EF, "nop_F8EF", "unknownF8EF", FV3V4),
	d(0xF8F0, "turn_off_bgm_p2", "", FV3V4),
	d(0xF8F1, "turn_on_bgm_p2", "", FV3V4),
	d(0xF8F2, "unknown_F8F2", "load_unk_data", FV3V4|FArgs, i32, f32, f32, i32, regs(4), Arg{Type: Label16, Data: DataF8F2Entries}),
	d(0xF8F3, "particle2", "", FV3V4|FArgs, regs(3), i32, f32),
	d(0xF901, "dec2float", "", FV3V4, reg, reg),
	d(0xF902, "float2dec", "", FV3V4, reg, reg),
	d(0xF903, "flet", "", FV3V4, reg, reg),
	d(0xF904, "fleti", "", FV3V4, reg, f32),
	d(0xF908, "fadd", "", FV3V4, reg, reg),
	d(0xF909, "faddi", "", FV3V4, reg, f32),
	d(0xF90A, "fsub", "", FV3V4, reg, reg),
	d(0xF90B, "fsubi", "", FV3V4, reg, f32),
	d(0xF90C, "fmul", "", FV3V4, reg, reg),
	d(0xF90D, "fmuli", "", FV3V4, reg, f32),
	d(0xF90E, "fdiv", "", FV3V4, reg, reg),
	d(0xF90F, "fdivi", "", FV3V4, reg, f32),
	d(0xF910, "get_total_deaths", "get_unknown_count?", FV3V4|FArgs, clientID, reg),
	d(0xF911, "get_stackable_item_count", "", FV3V4, regs(4), reg),
	d(0xF912, "freeze_and_hide_equip", "", FV3V4),
	d(0xF913, "thaw_and_show_equip", "", FV3V4),
	d(0xF914, "set_palettex_callback", "set_paletteX_callback", FV3V4|FArgs, clientID, script16),
	d(0xF915, "activate_palettex", "activate_paletteX", FV3V4|FArgs, clientID),
	d(0xF916, "enable_palettex", "enable_paletteX", FV3V4|FArgs, clientID),
	d(0xF917, "restore_palettex", "restore_paletteX", FV3V4|FArgs, clientID),
	d(0xF918, "disable_palettex", "disable_paletteX", FV3V4|FArgs, clientID),
	d(0xF919, "get_palettex_activated", "get_paletteX_activated", FV3V4|FArgs, clientID, reg),
	d(0xF91A, "get_unknown_palettex_status", "get_unknown_paletteX_status?", FV3V4|FArgs, clientID, i32, reg),
	d(0xF91B, "disable_movement2", "", FV3V4|FArgs, clientID),
	d(0xF91C, "enable_movement2", "", FV3V4|FArgs, clientID),
	d(0xF91D, "get_time_played", "", FV3V4, reg),
	d(0xF91E, "get_guildcard_total", "", FV3V4, reg),
	d(0xF91F, "get_slot_meseta", "", FV3V4, reg),
	d(0xF920, "get_player_level", "", FV3V4|FArgs, clientID, reg),
	d(0xF921, "get_section_id", "get_Section_ID", FV3V4|FArgs, clientID, reg),
	d(0xF922, "get_player_hp", "", FV3V4|FArgs, clientID, regs(4)),
	d(0xF923, "get_floor_number", "", FV3V4|FArgs, clientID, regs(2)),
	d(0xF924, "get_coord_player_detect", "", FV3V4, regs(3), regs(4)),
	d(0xF925, "read_counter", "read_global_flag", FV3V4|FArgs, i32, reg),
	d(0xF926, "write_counter", "write_global_flag", FV3V4|FArgs, i32, i32),
	d(0xF927, "item_detect_bank2", "unknownF927", FV3V4, regs(4), reg),
	d(0xF928, "floor_player_detect", "", FV3V4, regs(4)),
	d(0xF929, "prepare_gba_rom_from_disk", "read_disk_file?", FV3|FArgs, str),
	d(0xF929, "nop_F929", "", FV4|FArgs, str),
	d(0xF92A, "open_pack_select", "", FV3V4),
	d(0xF92B, "item_select", "", FV3V4, reg),
	d(0xF92C, "get_item_id", "", FV3V4, reg),
	d(0xF92D, "color_change", "", FV3V4|FArgs, i32, i32, i32, i32, i32),
	d(0xF92E, "send_statistic", "send_statistic?", FV3V4|FArgs, i32, i32, i32, i32, i32, i32, i32, i32),
	d(0xF92F, "gba_write_identifiers", "unknownF92F", FV3|FArgs, i32, i32),
	d(0xF92F, "nop_F92F", "", FV4|FArgs, i32, i32),
	d(0xF930, "chat_box", "", FV3V4|FArgs, i32, i32, i32, i32, i32, str),
	d(0xF931, "chat_bubble", "", FV3V4|FArgs, i32, str),
	d(0xF932, "set_episode2", "", FV3V4, reg),
	d(0xF933, "item_create_multi_cm", "unknownF933", FV3, regs(7)),
	d(0xF933, "nop_F933", "", FV4, regs(7)),
	d(0xF934, "scroll_text", "", FV3V4|FArgs, i32, i32, i32, i32, i32, f32, reg, str),
	d(0xF935, "gba_create_dl_graph", "gba_unknown1", FGCV3|FGCEp3NTE|FGCEp3),
	d(0xF935, "nop_F935", "", FXBV3|FV4),
	d(0xF936, "gba_destroy_dl_graph", "gba_unknown2", FGCV3|FGCEp3NTE|FGCEp3),
	d(0xF936, "nop_F936", "", FXBV3|FV4),
	d(0xF937, "gba_update_dl_graph", "gba_unknown3", FGCV3|FGCEp3NTE|FGCEp3),
	d(0xF937, "nop_F937", "", FXBV3|FV4),
	d(0xF938, "add_damage_to", "add_damage_to?", FV3V4|FArgs, i32, i32),
	d(0xF939, "item_delete3", "", FV3V4|FArgs, i32),
	d(0xF93A, "get_item_info", "", FV3V4|FArgs, itemID, regs(12)),
	d(0xF93B, "item_packing1", "", FV3V4|FArgs, itemID),
	d(0xF93C, "item_packing2", "", FV3V4|FArgs, itemID, i32),
	d(0xF93D, "get_lang_setting", "get_lang_setting?", FV3V4|FArgs, reg),
	d(0xF93E, "prepare_statistic", "prepare_statistic?", FV3V4|FArgs, i32, i32, i32),
	d(0xF93F, "keyword_detect", "", FV3V4),
	d(0xF940, "keyword", "", FV3V4|FArgs, reg, i32, str),
	d(0xF941, "get_guildcard_num", "", FV3V4|FArgs, clientID, reg),
	d(0xF942, "get_recent_symbol_chat", "", FV3V4|FArgs, i32, regs(15)),
	d(0xF943, "create_symbol_chat_capture_buffer", "", FV3V4),
	d(0xF944, "get_item_stackability", "get_wrap_status", FV3V4|FArgs, itemID, reg),
	d(0xF945, "initial_floor", "", FV3V4|FArgs, i32),
	d(0xF946, "sin", "", FV3V4|FArgs, reg, i32),
	d(0xF947, "cos", "", FV3V4|FArgs, reg, i32),
	d(0xF948, "tan", "", FV3V4|FArgs, reg, i32),
	d(0xF949, "atan2_int", "", FV3V4|FArgs, reg, f32, f32),
	d(0xF94A, "olga_flow_is_dead", "boss_is_dead2?", FV3V4, reg),
	d(0xF94B, "particle_effect_nc", "particle3", FV3V4, regs(4)),
	d(0xF94C, "player_effect_nc", "unknownF94C", FV3V4, regs(4)),
	d(0xF94D, "has_ep3_save_file", "", FGCV3|FArgs, reg),
	d(0xF94D, "give_card", "is_there_cardbattle?", FGCEp3NTE, reg),
	d(0xF94D, "give_or_take_card", "is_there_cardbattle?", FGCEp3, regs(2)),
	d(0xF94D, "unknown_F94D", "", FXBV3|FArgs, i32, reg),
	d(0xF94D, "nop_F94D", "", FV4),
	d(0xF94E, "nop_F94E", "", FV4),
	d(0xF94F, "nop_F94F", "", FV4),
	d(0xF950, "bb_p2_menu", "BB_p2_menu", FV4|FArgs, i32),
	d(0xF951, "bb_map_designate", "BB_Map_Designate", FV4, i8, i8, i8, i8, i8),
	d(0xF952, "bb_get_number_in_pack", "BB_get_number_in_pack", FV4, reg),
	d(0xF953, "bb_swap_item", "BB_swap_item", FV4|FArgs, i32, i32, i32, i32, i32, i32, script16, script16),
	d(0xF954, "bb_check_wrap", "BB_check_wrap", FV4|FArgs, i32, reg),
	d(0xF955, "bb_exchange_pd_item", "BB_exchange_PD_item", FV4|FArgs, i32, i32, i32, label16, label16),
	d(0xF956, "bb_exchange_pd_srank", "BB_exchange_PD_srank", FV4|FArgs, i32, i32, i32, i32, i32, label16, label16),
	d(0xF957, "bb_exchange_pd_percent", "BB_exchange_PD_special", FV4|FArgs, i32, i32, i32, i32, i32, i32, label16, label16),
	d(0xF958, "bb_exchange_ps_percent", "BB_exchange_PD_percent", FV4|FArgs, i32, i32, i32, i32, i32, i32, label16, label16),
	d(0xF959, "bb_set_ep4_boss_can_escape", "unknownF959", FV4|FArgs, i32),
	d(0xF95A, "bb_is_ep4_boss_dying", "", FV4, reg),
	d(0xF95B, "bb_send_6xD9", "", FV4|FArgs, i32, i32, i32, i32, label16, label16),
	d(0xF95C, "bb_exchange_slt", "BB_exchange_SLT", FV4|FArgs, i32, i32, i32, i32),
	d(0xF95D, "bb_exchange_pc", "BB_exchange_PC", FV4),
	d(0xF95E, "bb_box_create_bp", "BB_box_create_BP", FV4|FArgs, i32, f32, f32),
	d(0xF95F, "bb_exchange_pt", "BB_exchage_PT", FV4|FArgs, i32, i32, i32, i32, i32),
	d(0xF960, "bb_send_6xE2", "unknownF960", FV4|FArgs, i32),
	d(0xF961, "bb_get_6xE3_status", "unknownF961", FV4, reg),
}
