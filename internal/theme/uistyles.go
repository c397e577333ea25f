package theme

import "github.com/vladdoster/eza/internal/style"

// UIStyles is the fixed catalog of named style slots, one per UI
// element the renderer can paint. Each slot holds exactly one style at
// a time; the string parser overwrites whole slots, it never merges into
// them. The zero value paints everything plain.
type UIStyles struct {
	FileKinds FileKinds
	Perms     Permissions
	Size      Size
	Users     Users
	Links     Links
	Git       Git
	GitRepo   GitRepo
	Security  SecurityContext
	FileType  FileTypes

	Punctuation style.Style
	Date        style.Style
	Inode       style.Style
	Blocks      style.Style
	Header      style.Style
	Octal       style.Style
	Flags       style.Style

	SymlinkPath   style.Style
	ControlChar   style.Style
	BrokenSymlink style.Style

	// BrokenPathOverlay is not painted directly: it amends the symlink
	// and control-character styles via overlay composition when the
	// target is broken.
	BrokenPathOverlay style.Style
}

// FileKinds styles the file-kind classification of a name.
type FileKinds struct {
	Normal      style.Style
	Directory   style.Style
	Symlink     style.Style
	Pipe        style.Style
	BlockDevice style.Style
	CharDevice  style.Style
	Socket      style.Style
	Special     style.Style
	Executable  style.Style
	MountPoint  style.Style
}

// Permissions styles the individual bits of a permissions column.
type Permissions struct {
	UserRead         style.Style
	UserWrite        style.Style
	UserExecuteFile  style.Style
	UserExecuteOther style.Style
	GroupRead        style.Style
	GroupWrite       style.Style
	GroupExecute     style.Style
	OtherRead        style.Style
	OtherWrite       style.Style
	OtherExecute     style.Style
	SpecialUserFile  style.Style
	SpecialOther     style.Style
	Attribute        style.Style
}

// Size styles file sizes, with one number and unit slot per magnitude
// tier, plus the major/minor pair of device IDs.
type Size struct {
	NumberByte style.Style
	NumberKilo style.Style
	NumberMega style.Style
	NumberGiga style.Style
	NumberHuge style.Style

	UnitByte style.Style
	UnitKilo style.Style
	UnitMega style.Style
	UnitGiga style.Style
	UnitHuge style.Style

	Major style.Style
	Minor style.Style
}

// Users styles owner and group columns.
type Users struct {
	UserYou    style.Style
	UserOther  style.Style
	UserRoot   style.Style
	GroupYours style.Style
	GroupOther style.Style
	GroupRoot  style.Style
}

// Links styles the hard-link count column.
type Links struct {
	Normal        style.Style
	MultiLinkFile style.Style
}

// Git styles per-file version-control states.
type Git struct {
	New        style.Style
	Modified   style.Style
	Deleted    style.Style
	Renamed    style.Style
	TypeChange style.Style
	Ignored    style.Style
	Conflicted style.Style
}

// GitRepo styles repository-level version-control states.
type GitRepo struct {
	BranchMain  style.Style
	BranchOther style.Style
	GitClean    style.Style
	GitDirty    style.Style
}

// SecurityContext styles the security-context column.
type SecurityContext struct {
	None    style.Style
	SELinux SELinux
}

// SELinux styles the fields of an SELinux context string.
type SELinux struct {
	Colon style.Style
	User  style.Style
	Role  style.Style
	Type  style.Style
	Range style.Style
}

// FileTypes styles the built-in file-type categories used when no
// explicit glob mapping matches a name.
type FileTypes struct {
	Image      style.Style
	Video      style.Style
	Music      style.Style
	Lossless   style.Style
	Crypto     style.Style
	Document   style.Style
	Compressed style.Style
	Temp       style.Style
	Compiled   style.Style
	Build      style.Style
	Source     style.Style
}

// codeEntry binds a textual key to the slot it writes. The tables
// below are deliberately flat arrays rather than chained conditionals
// so the recognized key set stays easy to audit.
type codeEntry struct {
	key string
	set func(*UIStyles, style.Style)
}

// lsCodes is the restricted legacy key set. Both specification strings
// try this table first.
var lsCodes = []codeEntry{
	{"fi", func(u *UIStyles, s style.Style) { u.FileKinds.Normal = s }},
	{"di", func(u *UIStyles, s style.Style) { u.FileKinds.Directory = s }},
	{"ln", func(u *UIStyles, s style.Style) { u.FileKinds.Symlink = s }},
	{"pi", func(u *UIStyles, s style.Style) { u.FileKinds.Pipe = s }},
	{"bd", func(u *UIStyles, s style.Style) { u.FileKinds.BlockDevice = s }},
	{"cd", func(u *UIStyles, s style.Style) { u.FileKinds.CharDevice = s }},
	{"so", func(u *UIStyles, s style.Style) { u.FileKinds.Socket = s }},
	{"ex", func(u *UIStyles, s style.Style) { u.FileKinds.Executable = s }},
	{"or", func(u *UIStyles, s style.Style) { u.BrokenSymlink = s }},
}

// extCodes is the tool-specific superset. Only the extended
// specification string reaches this table, and only for keys the
// legacy table did not claim.
var extCodes = []codeEntry{
	{"ur", func(u *UIStyles, s style.Style) { u.Perms.UserRead = s }},
	{"uw", func(u *UIStyles, s style.Style) { u.Perms.UserWrite = s }},
	{"ux", func(u *UIStyles, s style.Style) { u.Perms.UserExecuteFile = s }},
	{"ue", func(u *UIStyles, s style.Style) { u.Perms.UserExecuteOther = s }},
	{"gr", func(u *UIStyles, s style.Style) { u.Perms.GroupRead = s }},
	{"gw", func(u *UIStyles, s style.Style) { u.Perms.GroupWrite = s }},
	{"gx", func(u *UIStyles, s style.Style) { u.Perms.GroupExecute = s }},
	{"tr", func(u *UIStyles, s style.Style) { u.Perms.OtherRead = s }},
	{"tw", func(u *UIStyles, s style.Style) { u.Perms.OtherWrite = s }},
	{"tx", func(u *UIStyles, s style.Style) { u.Perms.OtherExecute = s }},
	{"su", func(u *UIStyles, s style.Style) { u.Perms.SpecialUserFile = s }},
	{"sf", func(u *UIStyles, s style.Style) { u.Perms.SpecialOther = s }},
	{"xa", func(u *UIStyles, s style.Style) { u.Perms.Attribute = s }},

	{"sn", func(u *UIStyles, s style.Style) { u.Size.setNumbers(s) }},
	{"sb", func(u *UIStyles, s style.Style) { u.Size.setUnits(s) }},
	{"nb", func(u *UIStyles, s style.Style) { u.Size.NumberByte = s }},
	{"nk", func(u *UIStyles, s style.Style) { u.Size.NumberKilo = s }},
	{"nm", func(u *UIStyles, s style.Style) { u.Size.NumberMega = s }},
	{"ng", func(u *UIStyles, s style.Style) { u.Size.NumberGiga = s }},
	{"nt", func(u *UIStyles, s style.Style) { u.Size.NumberHuge = s }},
	{"ub", func(u *UIStyles, s style.Style) { u.Size.UnitByte = s }},
	{"uk", func(u *UIStyles, s style.Style) { u.Size.UnitKilo = s }},
	{"um", func(u *UIStyles, s style.Style) { u.Size.UnitMega = s }},
	{"ug", func(u *UIStyles, s style.Style) { u.Size.UnitGiga = s }},
	{"ut", func(u *UIStyles, s style.Style) { u.Size.UnitHuge = s }},
	{"df", func(u *UIStyles, s style.Style) { u.Size.Major = s }},
	{"ds", func(u *UIStyles, s style.Style) { u.Size.Minor = s }},

	{"uu", func(u *UIStyles, s style.Style) { u.Users.UserYou = s }},
	{"un", func(u *UIStyles, s style.Style) { u.Users.UserOther = s }},
	{"uR", func(u *UIStyles, s style.Style) { u.Users.UserRoot = s }},
	{"gu", func(u *UIStyles, s style.Style) { u.Users.GroupYours = s }},
	{"gn", func(u *UIStyles, s style.Style) { u.Users.GroupOther = s }},
	{"gR", func(u *UIStyles, s style.Style) { u.Users.GroupRoot = s }},

	{"lc", func(u *UIStyles, s style.Style) { u.Links.Normal = s }},
	{"lm", func(u *UIStyles, s style.Style) { u.Links.MultiLinkFile = s }},

	{"ga", func(u *UIStyles, s style.Style) { u.Git.New = s }},
	{"gm", func(u *UIStyles, s style.Style) { u.Git.Modified = s }},
	{"gd", func(u *UIStyles, s style.Style) { u.Git.Deleted = s }},
	{"gv", func(u *UIStyles, s style.Style) { u.Git.Renamed = s }},
	{"gt", func(u *UIStyles, s style.Style) { u.Git.TypeChange = s }},
	{"gi", func(u *UIStyles, s style.Style) { u.Git.Ignored = s }},
	{"gc", func(u *UIStyles, s style.Style) { u.Git.Conflicted = s }},

	{"Gm", func(u *UIStyles, s style.Style) { u.GitRepo.BranchMain = s }},
	{"Go", func(u *UIStyles, s style.Style) { u.GitRepo.BranchOther = s }},
	{"Gc", func(u *UIStyles, s style.Style) { u.GitRepo.GitClean = s }},
	{"Gd", func(u *UIStyles, s style.Style) { u.GitRepo.GitDirty = s }},

	{"xx", func(u *UIStyles, s style.Style) { u.Punctuation = s }},
	{"da", func(u *UIStyles, s style.Style) { u.Date = s }},
	{"in", func(u *UIStyles, s style.Style) { u.Inode = s }},
	{"bl", func(u *UIStyles, s style.Style) { u.Blocks = s }},
	{"hd", func(u *UIStyles, s style.Style) { u.Header = s }},
	{"oc", func(u *UIStyles, s style.Style) { u.Octal = s }},
	{"ff", func(u *UIStyles, s style.Style) { u.Flags = s }},
	{"lp", func(u *UIStyles, s style.Style) { u.SymlinkPath = s }},
	{"cc", func(u *UIStyles, s style.Style) { u.ControlChar = s }},
	{"bO", func(u *UIStyles, s style.Style) { u.BrokenPathOverlay = s }},
	{"mp", func(u *UIStyles, s style.Style) { u.FileKinds.MountPoint = s }},
	{"sp", func(u *UIStyles, s style.Style) { u.FileKinds.Special = s }},

	{"im", func(u *UIStyles, s style.Style) { u.FileType.Image = s }},
	{"vi", func(u *UIStyles, s style.Style) { u.FileType.Video = s }},
	{"mu", func(u *UIStyles, s style.Style) { u.FileType.Music = s }},
	{"lo", func(u *UIStyles, s style.Style) { u.FileType.Lossless = s }},
	{"cr", func(u *UIStyles, s style.Style) { u.FileType.Crypto = s }},
	{"do", func(u *UIStyles, s style.Style) { u.FileType.Document = s }},
	{"co", func(u *UIStyles, s style.Style) { u.FileType.Compressed = s }},
	{"tm", func(u *UIStyles, s style.Style) { u.FileType.Temp = s }},
	{"cm", func(u *UIStyles, s style.Style) { u.FileType.Compiled = s }},
	{"bu", func(u *UIStyles, s style.Style) { u.FileType.Build = s }},
	{"sc", func(u *UIStyles, s style.Style) { u.FileType.Source = s }},

	{"Sn", func(u *UIStyles, s style.Style) { u.Security.None = s }},
	{"Su", func(u *UIStyles, s style.Style) { u.Security.SELinux.User = s }},
	{"Sr", func(u *UIStyles, s style.Style) { u.Security.SELinux.Role = s }},
	{"St", func(u *UIStyles, s style.Style) { u.Security.SELinux.Type = s }},
	{"Sl", func(u *UIStyles, s style.Style) { u.Security.SELinux.Range = s }},
}

func (z *Size) setNumbers(s style.Style) {
	z.NumberByte = s
	z.NumberKilo = s
	z.NumberMega = s
	z.NumberGiga = s
	z.NumberHuge = s
}

func (z *Size) setUnits(s style.Style) {
	z.UnitByte = s
	z.UnitKilo = s
	z.UnitMega = s
	z.UnitGiga = s
	z.UnitHuge = s
}

// setLS writes p into the slot its key names in the legacy table.
// It reports whether the key was recognized.
func (u *UIStyles) setLS(p pair) bool {
	return apply(lsCodes, u, p)
}

// setExt writes p into the slot its key names in the extended table.
// It reports whether the key was recognized.
func (u *UIStyles) setExt(p pair) bool {
	return apply(extCodes, u, p)
}

func apply(table []codeEntry, u *UIStyles, p pair) bool {
	for _, e := range table {
		if e.key == p.key {
			e.set(u, p.toStyle())
			return true
		}
	}
	return false
}
