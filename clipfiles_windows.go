//go:build windows

package main

import (
	"errors"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var clipboardS ClipboardService

// Clipboard returns an object that provides access to the system clipboard.
func Clipboard() *ClipboardService {
	return &clipboardS
}

// ClipboardService provides access to the system clipboard.
type ClipboardService struct {
	hwnd win.HWND
}

func (c *ClipboardService) withOpenClipboard(f func() error) error {
	if !win.OpenClipboard(c.hwnd) {
		return errors.New("OpenClipboard failed")
	}
	defer win.CloseClipboard()

	return f()
}

// Files 读取剪切板中的文件路径(CF_HDROP)
func (c *ClipboardService) Files() (filenames []string, err error) {
	err = c.withOpenClipboard(func() error {
		hMem := win.HGLOBAL(win.GetClipboardData(win.CF_HDROP))
		if hMem == 0 {
			return errors.New("GetClipboardData failed")
		}
		p := win.GlobalLock(hMem)
		if p == nil {
			return errors.New("GlobalLock failed")
		}
		defer win.GlobalUnlock(hMem)
		filesCount := win.DragQueryFile(win.HDROP(p), 0xFFFFFFFF, nil, 0)
		filenames = make([]string, 0, filesCount)
		buf := make([]uint16, win.MAX_PATH)
		for i := uint(0); i < filesCount; i++ {
			win.DragQueryFile(win.HDROP(p), i, &buf[0], win.MAX_PATH)
			filenames = append(filenames, windows.UTF16ToString(buf))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return
}

func clipboardFiles() ([]string, error) {
	return Clipboard().Files()
}
