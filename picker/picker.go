// Package picker opens the native Windows file and folder selection
// dialogs and returns the chosen paths.
package picker

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/sirupsen/logrus"
)

// Mode 选择模式
type Mode int

const (
	// ModeFolder 选择单个文件夹
	ModeFolder Mode = iota + 1
	// ModeFile 选择单个文件
	ModeFile
	// ModeMultiFiles 选择多个文件
	ModeMultiFiles
)

// DefaultBufferSize is the dialog path buffer capacity in UTF-16
// characters, used when the caller passes a size <= 0.
const DefaultBufferSize = 8192

const (
	folderDialogTitle    = "Select Folder"
	fileDialogTitle      = "Select File"
	multiFileDialogTitle = "Select Files (multiple)"
)

func (m Mode) String() string {
	switch m {
	case ModeFolder:
		return "folder"
	case ModeFile:
		return "file"
	case ModeMultiFiles:
		return "multi-files"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode 解析选择模式: "folder", "file", "multi-files"
func ParseMode(s string) (Mode, error) {
	switch s {
	case "folder":
		return ModeFolder, nil
	case "file":
		return ModeFile, nil
	case "multi-files":
		return ModeMultiFiles, nil
	default:
		return 0, fmt.Errorf("invalid mode %q, must be 'folder', 'file' or 'multi-files'", s)
	}
}

// shellAPI is the slice of shell32/comdlg32/ole32 the picker touches.
// The real implementation lives in shell_windows.go.
type shellAPI interface {
	// InitCOM acquires the COM subsystem for the current call.
	InitCOM() error
	// ReleaseCOM must be called exactly once for a successful InitCOM.
	ReleaseCOM()
	// BrowseForFolder shows the folder browse dialog. A zero pidl means
	// the user canceled.
	BrowseForFolder(title string, display []uint16) (pidl uintptr, err error)
	// PathFromIDList resolves pidl into buf.
	PathFromIDList(pidl uintptr, buf []uint16) bool
	// FreeIDList releases the OS-allocated pidl memory.
	FreeIDList(pidl uintptr)
	// OpenFileName shows the open-file dialog, filling buf. ok is false
	// on cancel or dialog error.
	OpenFileName(title string, buf []uint16, multi bool) (ok bool, err error)
	// ExtendedError reports the comdlg32 extended error code after a
	// failed OpenFileName. Zero means the user canceled.
	ExtendedError() uint32
}

// SelectItems 打开 Windows 对话框选择文件或文件夹, 返回选中的绝对路径。
// 用户取消或对话框出错时返回空切片(通过日志区分), 无效的 mode 返回错误。
func SelectItems(mode Mode, bufferSize int) ([]string, error) {
	return selectItems(systemShell, mode, bufferSize)
}

func selectItems(api shellAPI, mode Mode, bufferSize int) ([]string, error) {
	switch mode {
	case ModeFolder, ModeFile, ModeMultiFiles:
	default:
		return nil, fmt.Errorf("invalid mode %s, must be 'folder', 'file' or 'multi-files'", mode)
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	buf := make([]uint16, bufferSize)
	if mode == ModeFolder {
		return selectFolder(api, buf)
	}
	return selectFiles(api, buf, mode == ModeMultiFiles)
}

func selectFolder(api shellAPI, buf []uint16) ([]string, error) {
	if err := api.InitCOM(); err != nil {
		return nil, err
	}
	defer api.ReleaseCOM()

	pidl, err := api.BrowseForFolder(folderDialogTitle, buf)
	if err != nil {
		return nil, err
	}
	if pidl == 0 {
		logrus.Info("folder dialog canceled")
		return []string{}, nil
	}
	defer api.FreeIDList(pidl)

	if !api.PathFromIDList(pidl, buf) {
		logrus.Error("failed to resolve path from item id list")
		return []string{}, nil
	}
	return []string{utf16ToString(buf)}, nil
}

func selectFiles(api shellAPI, buf []uint16, multi bool) ([]string, error) {
	title := fileDialogTitle
	if multi {
		title = multiFileDialogTitle
	}
	ok, err := api.OpenFileName(title, buf, multi)
	if err != nil {
		return nil, err
	}
	if !ok {
		if code := api.ExtendedError(); code != 0 {
			logrus.Errorf("file dialog failed, CommDlgExtendedError code: %#x", code)
		} else {
			logrus.Info("file dialog canceled")
		}
		return []string{}, nil
	}
	return joinSelection(splitNullSeparated(buf)), nil
}

// splitNullSeparated cuts a double-NUL terminated UTF-16 buffer into its
// non-empty NUL separated tokens.
func splitNullSeparated(buf []uint16) []string {
	var tokens []string
	start := 0
	for i := 0; i <= len(buf); i++ {
		if i == len(buf) || buf[i] == 0 {
			if i == start {
				// empty token, the buffer ends here
				break
			}
			tokens = append(tokens, string(utf16.Decode(buf[start:i])))
			start = i + 1
		}
	}
	return tokens
}

// joinSelection turns the open-file dialog tokens into full paths. With
// multi-select the first token is the shared directory and the rest are
// file names, but a single selection may come back as one bare full path
// (depends on the Windows version), so both shapes are accepted.
func joinSelection(tokens []string) []string {
	if len(tokens) == 0 {
		return []string{}
	}
	if len(tokens) == 1 {
		return []string{tokens[0]}
	}
	dir := strings.TrimSuffix(tokens[0], `\`)
	paths := make([]string, 0, len(tokens)-1)
	for _, name := range tokens[1:] {
		paths = append(paths, dir+`\`+name)
	}
	return paths
}

func utf16ToString(buf []uint16) string {
	for i, c := range buf {
		if c == 0 {
			buf = buf[:i]
			break
		}
	}
	return string(utf16.Decode(buf))
}

// utf16FromStringsZ encodes parts as UTF-16, NUL separated and double-NUL
// terminated, the layout comdlg32 filter strings use.
func utf16FromStringsZ(parts ...string) []uint16 {
	var out []uint16
	for _, p := range parts {
		out = append(out, utf16.Encode([]rune(p))...)
		out = append(out, 0)
	}
	return append(out, 0)
}
