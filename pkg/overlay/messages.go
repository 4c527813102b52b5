package overlay

import (
	"github.com/BrandonKowalski/overlay/pkg/overlay/i18n"
)

func tr(m *i18n.Message) string {
	return i18n.Localize(m, nil)
}

func trData(m *i18n.Message, data map[string]any) string {
	return i18n.Localize(m, data)
}

func trCount(m *i18n.Message, n int) string {
	return i18n.LocalizePlural(m, n, nil)
}

// Screen tabs
var (
	msgTabStart         = &i18n.Message{ID: "tab_start", Other: "START MENU"}
	msgTabStartShort    = &i18n.Message{ID: "tab_start_short", Other: "START"}
	msgTabKeyboard      = &i18n.Message{ID: "tab_keyboard", Other: "ON-SCREEN KEYBOARD"}
	msgTabKeyboardShort = &i18n.Message{ID: "tab_keyboard_short", Other: "KEYBOARD"}
	msgTabMapper        = &i18n.Message{ID: "tab_mapper", Other: "CONTROLLER MAPPER"}
	msgTabMapperShort   = &i18n.Message{ID: "tab_mapper_short", Other: "CONTROLS"}
	msgButtonOK         = &i18n.Message{ID: "button_ok", Other: "OK"}
	msgButtonCancel     = &i18n.Message{ID: "button_cancel", Other: "CANCEL"}
	msgKeyMapper        = &i18n.Message{ID: "osk_mapper", Other: "MAPPER"}
)

// Start menu
var (
	msgMenuTitle         = &i18n.Message{ID: "menu_title", Other: "START MENU"}
	msgMenuNoContent     = &i18n.Message{ID: "menu_no_content", Other: "no content loaded!"}
	msgMenuBootImage     = &i18n.Message{ID: "menu_boot_image", Other: "[ Boot from Disk Image ]"}
	msgMenuBootOS        = &i18n.Message{ID: "menu_boot_os", Other: "[ Run Installed Operating System ]"}
	msgMenuRunShell      = &i18n.Message{ID: "menu_run_shell", Other: "[ Run System Shell ]"}
	msgMenuInstallOS     = &i18n.Message{ID: "menu_install_os", Other: "[ Boot and Install New Operating System ]"}
	msgMenuNoExecutable  = &i18n.Message{ID: "menu_no_executable", Other: "No executable file found"}
	msgMenuCommandLine   = &i18n.Message{ID: "menu_command_line", Other: "Go to Command Line"}
	msgMenuClose         = &i18n.Message{ID: "menu_close", Other: "Close Menu"}
	msgMenuMount         = &i18n.Message{ID: "menu_mount", Other: "MOUNT"}
	msgMenuUnmount       = &i18n.Message{ID: "menu_unmount", Other: "UNMOUNT"}
	msgMenuSetAutoStart  = &i18n.Message{ID: "menu_set_auto_start", Other: "[SET AUTO START]"}
	msgMenuSelectMachine = &i18n.Message{ID: "menu_select_machine", Other: "Select Boot System Mode"}
	msgMenuCancel        = &i18n.Message{ID: "menu_cancel", Other: "Cancel"}
	msgMenuInstallSize   = &i18n.Message{ID: "menu_install_size", Other: "Hard Disk Size For Install"}
	msgMenuInstallWhere  = &i18n.Message{ID: "menu_install_location", Other: "Create a new hard disk image in the following location:"}
	msgMenuDiskSize      = &i18n.Message{ID: "menu_disk_size", Other: "{{.Size}} {{.Unit}}B Hard Disk"}
	msgMenuFAT32Warning  = &i18n.Message{ID: "menu_fat32_warning", Other: "Hard disk images over 2GB will be formatted with FAT32"}
	msgMenuFAT32Note     = &i18n.Message{ID: "menu_fat32_note", Other: "NOTE: FAT32 is only supported in Windows 95C and newer"}
	msgMenuBootNoDisk    = &i18n.Message{ID: "menu_boot_no_disk", Other: "[ Boot Only Without Creating Hard Disk Image ]"}
	msgMenuSelectOS      = &i18n.Message{ID: "menu_select_os", Other: "Select Operating System Disk Image"}
	msgMenuRefreshList   = &i18n.Message{ID: "menu_refresh_list", Other: "[ Refresh List ]"}
	msgMenuSelectShell   = &i18n.Message{ID: "menu_select_shell", Other: "Select System Shell"}
	msgMenuSkipFrames    = &i18n.Message{ID: "menu_skip_frames", One: "Skip showing first frame", Other: "Skip showing first {{.Count}} frames"}
	msgMenuComeBack      = &i18n.Message{ID: "menu_come_back", Other: "SHIFT/L2/R2 + Restart to come back"}
	msgMenuHintRun       = &i18n.Message{ID: "menu_hint_run", Other: "Run"}
	msgMenuHintAutoStart = &i18n.Message{ID: "menu_hint_auto_start", Other: "Set Auto Start"}
	msgMenuHintScroll    = &i18n.Message{ID: "menu_hint_scroll", Other: "Scroll"}
	msgPopupReset1       = &i18n.Message{ID: "popup_reset_1", Other: "Are you sure you want to reset DOS"}
	msgPopupReset2       = &i18n.Message{ID: "popup_reset_2", Other: "to start the selected application?"}
	msgPopupResetShort1  = &i18n.Message{ID: "popup_reset_short_1", Other: "Reset DOS to"}
	msgPopupResetShort2  = &i18n.Message{ID: "popup_reset_short_2", Other: "start this?"}
)

// Gamepad mapper
var (
	msgMapperTitle          = &i18n.Message{ID: "mapper_title", Other: "Gamepad Mapper"}
	msgMapperPort           = &i18n.Message{ID: "mapper_port", Other: "Controller Port {{.Port}}"}
	msgMapperDisabled1      = &i18n.Message{ID: "mapper_disabled_1", Other: "Gamepad Mapper is disabled"}
	msgMapperDisabled2      = &i18n.Message{ID: "mapper_disabled_2", Other: "for this controller port"}
	msgMapperDisabled3      = &i18n.Message{ID: "mapper_disabled_3", Other: "Set 'Use Gamepad Mapper'"}
	msgMapperDisabled4      = &i18n.Message{ID: "mapper_disabled_4", Other: "in the Controls menu"}
	msgMapperPreset         = &i18n.Message{ID: "mapper_preset", Other: "Preset:"}
	msgMapperEdit           = &i18n.Message{ID: "mapper_edit", Other: "[Edit]"}
	msgMapperCreate         = &i18n.Message{ID: "mapper_create", Other: "[Create Binding]"}
	msgMapperWheelOptions   = &i18n.Message{ID: "mapper_wheel_options", Other: "Wheel Options:"}
	msgMapperAddOption      = &i18n.Message{ID: "mapper_add_option", Other: "Add Option"}
	msgMapperWarning        = &i18n.Message{ID: "mapper_warning", Other: "Warning:"}
	msgMapperWheelNoAccess  = &i18n.Message{ID: "mapper_wheel_inaccessible", Other: "Wheel is inaccessible because no"}
	msgMapperNoWheelBind    = &i18n.Message{ID: "mapper_no_wheel_bind", Other: "button was bound to Action Wheel"}
	msgMapperNoWheelOptions = &i18n.Message{ID: "mapper_no_wheel_options", Other: "options have been defined here"}
	msgMapperClose          = &i18n.Message{ID: "mapper_close", Other: "Close Mapper"}
	msgMapperSelectPreset   = &i18n.Message{ID: "mapper_select_preset", Other: "Select Preset"}
	msgMapperFillGeneric    = &i18n.Message{ID: "mapper_fill_generic", Other: "Fill Unbound with Generic Keys"}
	msgMapperReset          = &i18n.Message{ID: "mapper_reset", Other: "[Reset Mapping]"}
	msgMapperKeyboard       = &i18n.Message{ID: "mapper_keyboard", Other: "Keyboard"}
	msgMapperMouse          = &i18n.Message{ID: "mapper_mouse", Other: "Mouse"}
	msgMapperJoystick       = &i18n.Message{ID: "mapper_joystick", Other: "Joystick"}
	msgMapperOSK            = &i18n.Message{ID: "mapper_osk", Other: "On Screen Keyboard"}
	msgMapperActionWheel    = &i18n.Message{ID: "mapper_action_wheel", Other: "Action Wheel"}
	msgMapperRemove         = &i18n.Message{ID: "mapper_remove", Other: "[Remove Binding]"}
	msgMapperAdditional     = &i18n.Message{ID: "mapper_additional", Other: "[Additional Binding]"}
	msgMapperCancel         = &i18n.Message{ID: "mapper_cancel", Other: "Cancel"}
)

// Any key prompt
var (
	msgAnyKeyReturn = &i18n.Message{ID: "any_key_return", Other: "* PRESS ANY KEY TO RETURN TO START MENU *"}
	msgAnyKeyExit   = &i18n.Message{
		ID:    "any_key_exit",
		One:   "* GAME ENDED - EXITING IN {{.Count}} SECOND - PRESS ANY KEY TO CONTINUE *",
		Other: "* GAME ENDED - EXITING IN {{.Count}} SECONDS - PRESS ANY KEY TO CONTINUE *",
	}
)

// deviceLabel is the localized name of a mapper device.
func deviceLabel(d MapperDevice) string {
	switch d {
	case MapperKeyboard:
		return tr(msgMapperKeyboard)
	case MapperMouse:
		return tr(msgMapperMouse)
	case MapperJoystick:
		return tr(msgMapperJoystick)
	}
	return d.GetName()
}
