package picker

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeShell simulates the native dialog layer and records every call.
type fakeShell struct {
	initErr     error
	initCalls   int
	releases    int
	browsePidl  uintptr
	browseCalls int
	folderPath  string
	resolveOK   bool
	freedPidls  []uintptr
	openBuf     string
	openOK      bool
	openCalls   int
	openMulti   bool
	dlgErrCode  uint32
}

func (f *fakeShell) InitCOM() error {
	f.initCalls++
	return f.initErr
}

func (f *fakeShell) ReleaseCOM() { f.releases++ }

func (f *fakeShell) BrowseForFolder(title string, display []uint16) (uintptr, error) {
	f.browseCalls++
	return f.browsePidl, nil
}

func (f *fakeShell) PathFromIDList(pidl uintptr, buf []uint16) bool {
	if !f.resolveOK {
		return false
	}
	encoded := utf16.Encode([]rune(f.folderPath))
	copy(buf, encoded)
	buf[len(encoded)] = 0
	return true
}

func (f *fakeShell) FreeIDList(pidl uintptr) {
	f.freedPidls = append(f.freedPidls, pidl)
}

func (f *fakeShell) OpenFileName(title string, buf []uint16, multi bool) (bool, error) {
	f.openCalls++
	f.openMulti = multi
	if !f.openOK {
		return false, nil
	}
	copy(buf, utf16.Encode([]rune(f.openBuf)))
	return true, nil
}

func (f *fakeShell) ExtendedError() uint32 { return f.dlgErrCode }

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"folder", ModeFolder, false},
		{"file", ModeFile, false},
		{"multi-files", ModeMultiFiles, false},
		{"invalid", 0, true},
		{"", 0, true},
		{"Folder", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestSelectItemsInvalidMode(t *testing.T) {
	fake := &fakeShell{}
	_, err := selectItems(fake, Mode(42), 0)
	require.Error(t, err)
	// no OS interaction may happen before validation
	assert.Zero(t, fake.initCalls)
	assert.Zero(t, fake.browseCalls)
	assert.Zero(t, fake.openCalls)
}

func TestSelectFolderSuccess(t *testing.T) {
	fake := &fakeShell{
		browsePidl: 42,
		resolveOK:  true,
		folderPath: `C:\SelectedFolder`,
	}
	paths, err := selectItems(fake, ModeFolder, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{`C:\SelectedFolder`}, paths)
	// the pidl must be freed exactly once, COM torn down exactly once
	assert.Equal(t, []uintptr{42}, fake.freedPidls)
	assert.Equal(t, 1, fake.initCalls)
	assert.Equal(t, 1, fake.releases)
}

func TestSelectFolderCanceled(t *testing.T) {
	fake := &fakeShell{browsePidl: 0}
	paths, err := selectItems(fake, ModeFolder, 0)
	require.NoError(t, err)
	assert.Empty(t, paths)
	assert.Equal(t, 1, fake.initCalls)
	assert.Equal(t, 1, fake.releases)
	assert.Empty(t, fake.freedPidls)
}

func TestSelectFolderResolveFailure(t *testing.T) {
	fake := &fakeShell{browsePidl: 7, resolveOK: false}
	paths, err := selectItems(fake, ModeFolder, 0)
	require.NoError(t, err)
	assert.Empty(t, paths)
	// the pidl is still freed and COM still released
	assert.Equal(t, []uintptr{7}, fake.freedPidls)
	assert.Equal(t, 1, fake.releases)
}

func TestSelectSingleFile(t *testing.T) {
	fake := &fakeShell{
		openOK:  true,
		openBuf: "C:\\Dir\\a.txt\x00\x00",
	}
	paths, err := selectItems(fake, ModeFile, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{`C:\Dir\a.txt`}, paths)
	assert.False(t, fake.openMulti)
}

func TestSelectMultiFiles(t *testing.T) {
	fake := &fakeShell{
		openOK:  true,
		openBuf: "C:\\Dir\x00a.txt\x00b.txt\x00\x00",
	}
	paths, err := selectItems(fake, ModeMultiFiles, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{`C:\Dir\a.txt`, `C:\Dir\b.txt`}, paths)
	assert.True(t, fake.openMulti)
}

// Some Windows versions hand back a multi-select of one as a single bare
// full path instead of directory+name. Both shapes must parse.
func TestSelectMultiFilesSingleSelection(t *testing.T) {
	fake := &fakeShell{
		openOK:  true,
		openBuf: "C:\\Dir\\only.csv\x00\x00",
	}
	paths, err := selectItems(fake, ModeMultiFiles, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{`C:\Dir\only.csv`}, paths)
}

func TestSelectFileCanceled(t *testing.T) {
	fake := &fakeShell{openOK: false, dlgErrCode: 0}
	paths, err := selectItems(fake, ModeFile, 0)
	require.NoError(t, err)
	assert.Empty(t, paths)
	assert.Equal(t, 1, fake.openCalls)
}

func TestSelectFileDialogError(t *testing.T) {
	// FNERR_INVALIDFILENAME
	fake := &fakeShell{openOK: false, dlgErrCode: 0x3002}
	paths, err := selectItems(fake, ModeMultiFiles, 0)
	require.NoError(t, err)
	// dialog errors are absorbed into an empty result, the code only
	// surfaces in the log
	assert.Empty(t, paths)
}

func TestSelectFolderInitCOMFailure(t *testing.T) {
	fake := &fakeShell{initErr: assert.AnError}
	_, err := selectItems(fake, ModeFolder, 0)
	require.Error(t, err)
	assert.Zero(t, fake.browseCalls)
}

func TestSplitNullSeparated(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"multi", "C:\\Dir\x00a.txt\x00b.txt\x00\x00", []string{`C:\Dir`, "a.txt", "b.txt"}},
		{"single", "C:\\Dir\\a.txt\x00\x00", []string{`C:\Dir\a.txt`}},
		{"empty", "\x00\x00", nil},
		{"no terminator", "abc", []string{"abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitNullSeparated(utf16.Encode([]rune(tt.in))))
		})
	}
}

func TestJoinSelection(t *testing.T) {
	// a root directory selection carries a trailing backslash which must
	// not be doubled when joining
	got := joinSelection([]string{`C:\`, "a.txt", "b.txt"})
	assert.Equal(t, []string{`C:\a.txt`, `C:\b.txt`}, got)

	assert.Equal(t, []string{}, joinSelection(nil))
	assert.Equal(t, []string{`D:\x\y.bin`}, joinSelection([]string{`D:\x\y.bin`}))
}

func TestSelectItemsRespectsBufferSize(t *testing.T) {
	fake := &fakeShell{openOK: true, openBuf: "C:\\a\x00\x00"}
	paths, err := selectItems(fake, ModeFile, 64)
	require.NoError(t, err)
	assert.Equal(t, []string{`C:\a`}, paths)
}
