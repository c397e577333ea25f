package theme

import "github.com/vladdoster/eza/internal/style"

// ColorScaleOptions selects graduated coloring for quantities that
// have magnitude tiers. When Size is set, each size tier gets its own
// hue instead of sharing one green.
type ColorScaleOptions struct {
	Size bool
}

// PlainUIStyles returns the catalog used when color is disabled: every
// slot paints plain text.
func PlainUIStyles() UIStyles {
	return UIStyles{}
}

// DefaultUIStyles returns the built-in theme. The values follow the
// long-established terminal convention: directories blue, symlinks
// cyan, executables green, and so on. Specification strings overwrite
// these slot by slot afterwards.
func DefaultUIStyles(scale ColorScaleOptions) UIStyles {
	return UIStyles{
		FileKinds: FileKinds{
			Normal:      style.Style{},
			Directory:   style.Blue.Bold(),
			Symlink:     style.Cyan.Normal(),
			Pipe:        style.Yellow.Normal(),
			BlockDevice: style.Yellow.Bold(),
			CharDevice:  style.Yellow.Bold(),
			Socket:      style.Red.Bold(),
			Special:     style.Yellow.Normal(),
			Executable:  style.Green.Bold(),
			MountPoint:  style.Blue.Bold().Underlined(),
		},
		Perms: Permissions{
			UserRead:         style.Yellow.Bold(),
			UserWrite:        style.Red.Bold(),
			UserExecuteFile:  style.Green.Bold().Underlined(),
			UserExecuteOther: style.Green.Bold(),
			GroupRead:        style.Yellow.Normal(),
			GroupWrite:       style.Red.Normal(),
			GroupExecute:     style.Green.Normal(),
			OtherRead:        style.Yellow.Normal(),
			OtherWrite:       style.Red.Normal(),
			OtherExecute:     style.Green.Normal(),
			SpecialUserFile:  style.Purple.Normal(),
			SpecialOther:     style.Purple.Normal(),
			Attribute:        style.Cyan.Normal(),
		},
		Size: defaultSize(scale),
		Users: Users{
			UserYou:    style.Yellow.Bold(),
			UserOther:  style.Style{},
			UserRoot:   style.Red.Bold(),
			GroupYours: style.Yellow.Bold(),
			GroupOther: style.Style{},
			GroupRoot:  style.Red.Normal(),
		},
		Links: Links{
			Normal:        style.Red.Bold(),
			MultiLinkFile: style.Red.Normal().On(style.Yellow),
		},
		Git: Git{
			New:        style.Green.Normal(),
			Modified:   style.Blue.Normal(),
			Deleted:    style.Red.Normal(),
			Renamed:    style.Yellow.Normal(),
			TypeChange: style.Purple.Normal(),
			Ignored:    style.Style{Dim: true},
			Conflicted: style.Red.Normal(),
		},
		GitRepo: GitRepo{
			BranchMain:  style.Green.Normal(),
			BranchOther: style.Yellow.Bold(),
			GitClean:    style.Green.Normal(),
			GitDirty:    style.Yellow.Bold(),
		},
		Security: SecurityContext{
			None: style.Style{},
			SELinux: SELinux{
				Colon: style.Fixed(244).Normal(),
				User:  style.Blue.Normal(),
				Role:  style.Green.Normal(),
				Type:  style.Yellow.Normal(),
				Range: style.Cyan.Normal(),
			},
		},
		FileType: FileTypes{
			Image:      style.Fixed(133).Normal(),
			Video:      style.Fixed(135).Normal(),
			Music:      style.Fixed(92).Normal(),
			Lossless:   style.Fixed(93).Normal(),
			Crypto:     style.Fixed(109).Normal(),
			Document:   style.Fixed(105).Normal(),
			Compressed: style.Red.Normal(),
			Temp:       style.Fixed(244).Normal(),
			Compiled:   style.Fixed(137).Normal(),
			Build:      style.Fixed(130).Normal(),
			Source:     style.Fixed(81).Normal(),
		},

		Punctuation: style.Fixed(244).Normal(),
		Date:        style.Blue.Normal(),
		Inode:       style.Purple.Normal(),
		Blocks:      style.Cyan.Normal(),
		Header:      style.Style{Underline: true},
		Octal:       style.Purple.Normal(),
		Flags:       style.Style{},

		SymlinkPath:       style.Cyan.Normal(),
		ControlChar:       style.Red.Normal(),
		BrokenSymlink:     style.Red.Normal(),
		BrokenPathOverlay: style.Style{Underline: true},
	}
}

func defaultSize(scale ColorScaleOptions) Size {
	if scale.Size {
		return Size{
			NumberByte: style.Fixed(118).Normal(),
			NumberKilo: style.Fixed(190).Normal(),
			NumberMega: style.Fixed(226).Normal(),
			NumberGiga: style.Fixed(220).Normal(),
			NumberHuge: style.Fixed(214).Normal(),
			UnitByte:   style.Fixed(118).Normal(),
			UnitKilo:   style.Fixed(190).Normal(),
			UnitMega:   style.Fixed(226).Normal(),
			UnitGiga:   style.Fixed(220).Normal(),
			UnitHuge:   style.Fixed(214).Normal(),
			Major:      style.Green.Bold(),
			Minor:      style.Green.Normal(),
		}
	}

	return Size{
		NumberByte: style.Green.Bold(),
		NumberKilo: style.Green.Bold(),
		NumberMega: style.Green.Bold(),
		NumberGiga: style.Green.Bold(),
		NumberHuge: style.Green.Bold(),
		UnitByte:   style.Green.Normal(),
		UnitKilo:   style.Green.Normal(),
		UnitMega:   style.Green.Normal(),
		UnitGiga:   style.Green.Normal(),
		UnitHuge:   style.Green.Normal(),
		Major:      style.Green.Bold(),
		Minor:      style.Green.Normal(),
	}
}
