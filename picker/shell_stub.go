//go:build !windows

package picker

import "errors"

// ErrUnsupportedPlatform is returned on operating systems without the
// native dialog support this package binds to.
var ErrUnsupportedPlatform = errors.New("native file dialogs are only supported on windows")

var systemShell shellAPI = stubShell{}

type stubShell struct{}

func (stubShell) InitCOM() error { return ErrUnsupportedPlatform }

func (stubShell) ReleaseCOM() {}

func (stubShell) BrowseForFolder(string, []uint16) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func (stubShell) PathFromIDList(uintptr, []uint16) bool { return false }

func (stubShell) FreeIDList(uintptr) {}

func (stubShell) OpenFileName(string, []uint16, bool) (bool, error) {
	return false, ErrUnsupportedPlatform
}

func (stubShell) ExtendedError() uint32 { return 0 }
