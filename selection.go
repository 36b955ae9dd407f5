package main

import (
	"strings"
	"sync"

	"github.com/doraemonkeys/windpick/picker"
	"golang.design/x/clipboard"
)

var (
	selectionMu   sync.Mutex
	selectedPaths []string
)

// 对话框一次只能打开一个
var dialogMu sync.Mutex

var clipboardReady bool

// pickViaDialog 打开选择对话框, 返回选中的绝对路径
func pickViaDialog(mode picker.Mode) ([]string, error) {
	dialogMu.Lock()
	defer dialogMu.Unlock()
	return picker.SelectItems(mode, GloballCnf.DialogBufferSize)
}

// pickAndStore 打开对话框并把结果加入当前选择, 返回新增数量。
// 用户取消时返回 0。
func pickAndStore(mode picker.Mode) (int, error) {
	paths, err := pickViaDialog(mode)
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, nil
	}
	addSelectedPaths(paths)
	copyPathsToClipboard(paths)
	return len(paths), nil
}

func addSelectedPaths(paths []string) {
	selectionMu.Lock()
	defer selectionMu.Unlock()
	selectedPaths = append(selectedPaths, paths...)
}

func currentSelection() []string {
	selectionMu.Lock()
	defer selectionMu.Unlock()
	paths := make([]string, len(selectedPaths))
	copy(paths, selectedPaths)
	return paths
}

func clearSelection() {
	selectionMu.Lock()
	defer selectionMu.Unlock()
	selectedPaths = nil
}

func selectionCount() int {
	selectionMu.Lock()
	defer selectionMu.Unlock()
	return len(selectedPaths)
}

func copyPathsToClipboard(paths []string) {
	if !clipboardReady || len(paths) == 0 {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(strings.Join(paths, "\n")))
}
