// Package filetype classifies file names into the broad categories the
// theme engine can paint when no explicit glob mapping matches. The
// classification looks only at the name: well-known build files match by
// full name, everything else by extension.
package filetype

import (
	"path/filepath"
	"strings"
)

// Category is a broad class of file recognized by name.
type Category int

const (
	None Category = iota
	Image
	Video
	Music
	Lossless
	Crypto
	Document
	Compressed
	Temp
	Compiled
	Build
	Source
)

// String returns the lowercase name of the category, for diagnostics.
func (c Category) String() string {
	switch c {
	case Image:
		return "image"
	case Video:
		return "video"
	case Music:
		return "music"
	case Lossless:
		return "lossless"
	case Crypto:
		return "crypto"
	case Document:
		return "document"
	case Compressed:
		return "compressed"
	case Temp:
		return "temp"
	case Compiled:
		return "compiled"
	case Build:
		return "build"
	case Source:
		return "source"
	default:
		return "none"
	}
}

// buildNames are matched against the whole file name. These are the
// files a build tool reads, not the artifacts it writes.
var buildNames = map[string]struct{}{
	"Makefile":       {},
	"makefile":       {},
	"GNUmakefile":    {},
	"Justfile":       {},
	"justfile":       {},
	"Rakefile":       {},
	"Gemfile":        {},
	"Dockerfile":     {},
	"Containerfile":  {},
	"Vagrantfile":    {},
	"Brewfile":       {},
	"Cargo.toml":     {},
	"pyproject.toml": {},
	"go.mod":         {},
	"go.sum":         {},
	"package.json":   {},
	"composer.json":  {},
	"pom.xml":        {},
	"build.gradle":   {},
	"meson.build":    {},
	"CMakeLists.txt": {},
	"SConstruct":     {},
	"SConscript":     {},
	"configure":      {},
	"configure.ac":   {},
}

var byExtension = map[string]Category{
	// images
	"png": Image, "jpg": Image, "jpeg": Image, "gif": Image, "bmp": Image,
	"tiff": Image, "tif": Image, "svg": Image, "webp": Image, "ico": Image,
	"heic": Image, "heif": Image, "avif": Image, "raw": Image, "xcf": Image,
	"psd": Image, "eps": Image, "pbm": Image, "pgm": Image, "ppm": Image,

	// video
	"avi": Video, "flv": Video, "m2v": Video, "m4v": Video, "mkv": Video,
	"mov": Video, "mp4": Video, "mpeg": Video, "mpg": Video, "ogm": Video,
	"ogv": Video, "vob": Video, "webm": Video, "wmv": Video, "ts": Video,

	// lossy music
	"aac": Music, "m4a": Music, "mka": Music, "mp2": Music, "mp3": Music,
	"ogg": Music, "opus": Music, "wma": Music,

	// lossless audio
	"alac": Lossless, "ape": Lossless, "flac": Lossless, "wav": Lossless,
	"aif": Lossless, "aiff": Lossless, "dsf": Lossless, "pcm": Lossless,

	// cryptology
	"asc": Crypto, "enc": Crypto, "gpg": Crypto, "p12": Crypto, "pfx": Crypto,
	"pgp": Crypto, "sig": Crypto, "signature": Crypto, "pem": Crypto,
	"kbx": Crypto, "md5": Crypto, "sha1": Crypto, "sha256": Crypto,

	// documents
	"djvu": Document, "doc": Document, "docx": Document, "eml": Document,
	"fotd": Document, "odp": Document, "ods": Document, "odt": Document,
	"pdf": Document, "ppt": Document, "pptx": Document, "rtf": Document,
	"xls": Document, "xlsx": Document, "epub": Document, "mobi": Document,

	// compressed and archived
	"zip": Compressed, "tar": Compressed, "gz": Compressed, "bz2": Compressed,
	"xz": Compressed, "zst": Compressed, "lz": Compressed, "lz4": Compressed,
	"lzma": Compressed, "lzo": Compressed, "7z": Compressed, "rar": Compressed,
	"iso": Compressed, "dmg": Compressed, "deb": Compressed, "rpm": Compressed,
	"tgz": Compressed, "tbz": Compressed, "tbz2": Compressed, "txz": Compressed,
	"cab": Compressed, "jar": Compressed, "cpio": Compressed, "br": Compressed,

	// temporary
	"tmp": Temp, "swp": Temp, "swo": Temp, "swn": Temp, "bak": Temp,
	"bk": Temp, "orig": Temp, "rej": Temp, "pid": Temp,

	// compiled artifacts
	"class": Compiled, "elc": Compiled, "hi": Compiled, "ko": Compiled,
	"o": Compiled, "obj": Compiled, "pyc": Compiled, "pyo": Compiled,
	"zwc": Compiled, "a": Compiled, "rlib": Compiled, "rmeta": Compiled,

	// source code
	"c": Source, "h": Source, "cc": Source, "cpp": Source, "cxx": Source,
	"hh": Source, "hpp": Source, "go": Source, "rs": Source, "py": Source,
	"js": Source, "jsx": Source, "mjs": Source, "tsx": Source,
	"java": Source, "rb": Source, "php": Source, "sh": Source, "bash": Source,
	"zsh": Source, "fish": Source, "pl": Source, "pm": Source, "swift": Source,
	"kt": Source, "kts": Source, "scala": Source, "hs": Source, "ml": Source,
	"mli": Source, "lua": Source, "el": Source, "clj": Source, "cljs": Source,
	"ex": Source, "exs": Source, "erl": Source, "zig": Source, "nim": Source,
	"v": Source, "d": Source, "cs": Source, "fs": Source, "vb": Source,
	"dart": Source, "r": Source, "jl": Source, "tex": Source, "sql": Source,
	"vim": Source, "asm": Source, "s": Source, "lisp": Source, "scm": Source,
}

// Classify maps a file name to its category, or None when the name is
// not recognized.
func Classify(name string) Category {
	if _, ok := buildNames[name]; ok {
		return Build
	}
	if isTempName(name) {
		return Temp
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return None
	}
	if cat, ok := byExtension[ext]; ok {
		return cat
	}
	return None
}

// isTempName recognizes editor scratch conventions: a trailing tilde
// (emacs backups) and names wrapped in hashes (emacs autosaves).
func isTempName(name string) bool {
	if strings.HasSuffix(name, "~") {
		return true
	}
	return len(name) > 2 && strings.HasPrefix(name, "#") && strings.HasSuffix(name, "#")
}
