//go:build windows

package picker

import (
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

const (
	bifReturnOnlyFSDirs = 0x00000001
	bifNewDialogStyle   = 0x00000040

	// S_FALSE: COM was already initialized on this thread.
	hrSFalse = syscall.Errno(1)
)

var systemShell shellAPI = win32Shell{}

// win32Shell talks to the real shell32/comdlg32/ole32.
type win32Shell struct{}

func (win32Shell) InitCOM() error {
	err := windows.CoInitializeEx(0, windows.COINIT_APARTMENTTHREADED)
	if err == hrSFalse {
		return nil
	}
	return err
}

func (win32Shell) ReleaseCOM() {
	windows.CoUninitialize()
}

func (win32Shell) BrowseForFolder(title string, display []uint16) (uintptr, error) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}
	bi := win.BROWSEINFO{
		HwndOwner:      0,
		PszDisplayName: &display[0],
		LpszTitle:      titlePtr,
		UlFlags:        bifReturnOnlyFSDirs | bifNewDialogStyle,
	}
	return win.SHBrowseForFolder(&bi), nil
}

func (win32Shell) PathFromIDList(pidl uintptr, buf []uint16) bool {
	return win.SHGetPathFromIDList(pidl, &buf[0])
}

func (win32Shell) FreeIDList(pidl uintptr) {
	windows.CoTaskMemFree(unsafe.Pointer(pidl))
}

func (win32Shell) OpenFileName(title string, buf []uint16, multi bool) (bool, error) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return false, err
	}
	filter := utf16FromStringsZ(
		"All Files (*.*)", "*.*",
		"Text Files (*.txt)", "*.txt",
		"CSV Files (*.csv)", "*.csv",
	)
	var flags uint32 = win.OFN_EXPLORER | win.OFN_FILEMUSTEXIST
	if multi {
		flags |= win.OFN_ALLOWMULTISELECT
	}
	ofn := win.OPENFILENAME{
		HwndOwner:    0,
		LpstrFilter:  &filter[0],
		NFilterIndex: 1,
		LpstrFile:    &buf[0],
		NMaxFile:     uint32(len(buf)),
		LpstrTitle:   titlePtr,
		Flags:        flags,
	}
	ofn.LStructSize = uint32(unsafe.Sizeof(ofn))
	return win.GetOpenFileName(&ofn), nil
}

func (win32Shell) ExtendedError() uint32 {
	return win.CommDlgExtendedError()
}
