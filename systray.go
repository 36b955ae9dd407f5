package main

import (
	"runtime"
	"strconv"

	"fyne.io/systray"
	"github.com/doraemonkeys/windpick/language"
	"github.com/doraemonkeys/windpick/picker"
	"github.com/sirupsen/logrus"
)

// quitCh 返回true表示退出程序
// quitCh 返回false表示隐藏状态栏图标
func ShowStatusBar() (quitCh chan bool) {
	quitCh = make(chan bool)
	onReady := func() {
		onReady(quitCh)
	}
	// onExit 在退出调用systray.Quit()方法时执行
	go func() {
		runtime.LockOSThread()
		systray.Run(onReady, nil)
	}()
	return quitCh
}

type setTitle interface {
	SetTitle(string)
}

func switchLang(items []Pair[setTitle, Pair[int, string]]) {
	for _, v := range items {
		v.First.SetTitle(language.Translate(v.Second.First) + v.Second.Second)
	}
}

func onReady(quitch chan bool) {
	systray.SetTemplateIcon(Data, Data)
	systray.SetTitle(ProgramName)
	systray.SetTooltip(ProgramName + " " + ProgramVersion)

	// 添加菜单项
	mPickFile := systray.AddMenuItem(language.Translate(language.PickFile),
		language.Translate(language.PickFile))
	mPickFiles := systray.AddMenuItem(language.Translate(language.PickFiles),
		language.Translate(language.PickFiles))
	mPickFolder := systray.AddMenuItem(language.Translate(language.PickFolder),
		language.Translate(language.PickFolder))
	mAddClip := systray.AddMenuItem(language.Translate(language.AddFromClipboard),
		language.Translate(language.AddFromClipboard))
	mClearSel := systray.AddMenuItem(language.Translate(language.ClearSelection)+" - 0",
		language.Translate(language.ClearSelection))

	systray.AddSeparator() //添加分割线
	mHide := systray.AddMenuItem(language.Translate(language.HideIcon),
		language.Translate(language.HideIcon))
	// 仅一次
	mSubHide := mHide.AddSubMenuItem(language.Translate(language.OnlyOnce),
		language.Translate(language.OnlyOnce))
	// 永久隐藏
	mSubHideForever := mHide.AddSubMenuItem(language.Translate(language.HideForever),
		language.Translate(language.HideForever))
	mLang := systray.AddMenuItem("Language", "Language")
	mLangZH := mLang.AddSubMenuItemCheckbox("简体中文", "简体中文", language.GetLanguage() == language.ZH_CN_CODE)
	mLangEN := mLang.AddSubMenuItemCheckbox("English", "English", language.GetLanguage() == language.EN_US_CODE)
	// 自启动
	mAutoStart := systray.AddMenuItemCheckbox(language.Translate(language.AutoStart),
		language.Translate(language.AutoStart), GloballCnf.AutoStart)

	systray.AddSeparator() //添加分割线
	mUrl := systray.AddMenuItem(language.Translate(language.OpenOfficialWebsite),
		language.Translate(language.OpenOfficialWebsite))
	mQuit := systray.AddMenuItem(language.Translate(language.Quit), "Quit the whole app")

	menuItems := []Pair[setTitle, Pair[int, string]]{
		{mPickFile, NewPair(language.PickFile, "")},
		{mPickFiles, NewPair(language.PickFiles, "")},
		{mPickFolder, NewPair(language.PickFolder, "")},
		{mAddClip, NewPair(language.AddFromClipboard, "")},
		{mHide, NewPair(language.HideIcon, "")},
		{mSubHide, NewPair(language.OnlyOnce, "")},
		{mSubHideForever, NewPair(language.HideForever, "")},
		{mAutoStart, NewPair(language.AutoStart, "")},
		{mUrl, NewPair(language.OpenOfficialWebsite, "")},
		{mQuit, NewPair(language.Quit, "")},
	}

	refreshClearTitle := func() {
		mClearSel.SetTitle(language.Translate(language.ClearSelection) +
			" - " + strconv.Itoa(selectionCount()))
		if selectionCount() == 0 {
			mClearSel.Disable()
		} else {
			mClearSel.Enable()
		}
	}

	pick := func(mode picker.Mode) {
		n, err := pickAndStore(mode)
		if err != nil {
			logrus.Error("failed to pick items:", err)
			if mode == picker.ModeFolder {
				Inform(language.Translate(language.SelectDirFailed))
			} else {
				Inform(language.Translate(language.SelectFileFailed))
			}
			return
		}
		if n == 0 {
			// user canceled
			return
		}
		Inform(strconv.Itoa(n) + " " + language.Translate(language.ItemsSelected))
		refreshClearTitle()
	}

	mClearSel.Disable()
	for {
		select {
		case <-mLangZH.ClickedCh:
			language.SetLanguage(language.ZH_CN_CODE)
			switchLang(menuItems)
			refreshClearTitle()
			mLangZH.Check()
			mLangEN.Uncheck()
			GloballCnf.Language = language.ZH_CN_CODE
			_ = GloballCnf.Save()
		case <-mLangEN.ClickedCh:
			language.SetLanguage(language.EN_US_CODE)
			switchLang(menuItems)
			refreshClearTitle()
			mLangZH.Uncheck()
			mLangEN.Check()
			GloballCnf.Language = language.EN_US_CODE
			_ = GloballCnf.Save()
		case <-mPickFile.ClickedCh:
			pick(picker.ModeFile)
		case <-mPickFiles.ClickedCh:
			pick(picker.ModeMultiFiles)
		case <-mPickFolder.ClickedCh:
			pick(picker.ModeFolder)
		case <-mAddClip.ClickedCh:
			paths, err := clipboardFiles()
			if err != nil || len(paths) == 0 {
				if err != nil {
					logrus.Error("failed to read files from clipboard:", err)
				}
				Inform(language.Translate(language.ClipboardNoFiles))
				continue
			}
			addSelectedPaths(paths)
			Inform(strconv.Itoa(len(paths)) + " " + language.Translate(language.ItemsSelected))
			refreshClearTitle()
		case <-mClearSel.ClickedCh:
			clearSelection()
			refreshClearTitle()
			Inform(language.Translate(language.SelectionCleared))
		case <-mUrl.ClickedCh:
			err := OpenUrl(ProgramUrl)
			if err != nil {
				logrus.Error("failed to open url:", err)
				Inform(err.Error())
			}
		case <-mSubHide.ClickedCh:
			systray.Quit()
			quitch <- false
			return
		case <-mSubHideForever.ClickedCh:
			GloballCnf.ShowSystrayIcon = false
			_ = GloballCnf.SaveAndSet()
			systray.Quit()
			quitch <- false
			return
		case <-mAutoStart.ClickedCh:
			GloballCnf.AutoStart = !GloballCnf.AutoStart
			err := GloballCnf.SaveAndSet()
			if err != nil {
				logrus.Error("failed to save config:", err)
				Inform(language.Translate(language.SaveConfigFailed) + ":" + err.Error())
			} else {
				if mAutoStart.Checked() {
					mAutoStart.Uncheck()
				} else {
					mAutoStart.Check()
				}
			}
		case <-mQuit.ClickedCh:
			systray.Quit()
			quitch <- true
			return
		}
	}
}
