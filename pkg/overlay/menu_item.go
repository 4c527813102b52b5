package overlay

// ItemKind tells a screen what choosing a list row does. ItemNone rows are
// inert: headers, warnings and blank dividers the selection steps over.
type ItemKind uint8

const (
	ItemNone ItemKind = iota

	// Start menu
	ItemRun
	ItemMount
	ItemBootImage
	ItemBootMachine
	ItemBootOSList
	ItemBootOS
	ItemInstallOSSize
	ItemInstallOS
	ItemShellList
	ItemRunShell
	ItemCancel
	ItemCommandLine
	ItemCloseOSD
	ItemSystemRefresh

	// Gamepad mapper
	ItemPreset
	ItemBind
	ItemAddBind
	ItemWheelSlot
	ItemAddWheel
	ItemDevice
	ItemTarget
	ItemRemove
	ItemAdditional
	ItemPresetChoice
	ItemFillGeneric
	ItemResetMapping
	ItemCloseMapper
)

// Selectable reports whether the selection may rest on rows of this kind.
func (k ItemKind) Selectable() bool {
	return k != ItemNone
}

// TextStyle picks how a row's text is drawn.
type TextStyle uint8

const (
	StyleNormal TextStyle = iota
	StyleHeader
	StyleWarn
	StyleDisabled
	StyleDivider // A line under the row
)

// ItemRef is the typed payload a row carries back to its screen.
type ItemRef interface {
	itemRef()
}

type (
	ImageRef    int  // Index into Machine.Images
	ProgramRef  int  // Index into the sorted program list
	SystemRef   int  // Index into Machine.OSImages or Machine.Shells
	MachineRef  byte // Machine mode letter
	DiskSizeRef int  // New hard disk size in MB, 0 boots without creating one
	BindRef     int  // Index into the binding table
	PresetRef   int  // Index into the preset list
	TargetRef   Target
	DeviceRef   MapperDevice
)

// InputRef names one mappable controller input: a joypad button or an
// analog stick half.
type InputRef struct {
	Pad int
}

// WheelRef names one target slot of an action wheel option.
type WheelRef struct {
	Item int
	Slot int
}

func (ImageRef) itemRef()    {}
func (ProgramRef) itemRef()  {}
func (SystemRef) itemRef()   {}
func (MachineRef) itemRef()  {}
func (DiskSizeRef) itemRef() {}
func (BindRef) itemRef()     {}
func (PresetRef) itemRef()   {}
func (TargetRef) itemRef()   {}
func (DeviceRef) itemRef()   {}
func (InputRef) itemRef()    {}
func (WheelRef) itemRef()    {}

// MenuItem is one row of a menu list.
type MenuItem struct {
	Kind  ItemKind
	Text  string
	Style TextStyle
	Ref   ItemRef // Nil for rows that carry nothing
}

func blankItem() MenuItem {
	return MenuItem{}
}

func textItem(style TextStyle, text string) MenuItem {
	return MenuItem{Style: style, Text: text}
}
