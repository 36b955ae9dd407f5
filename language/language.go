package language

const (
	PickFile = iota
	PickFiles
	PickFolder
	AddFromClipboard
	ClearSelection
	HideIcon
	OnlyOnce
	HideForever
	AutoStart
	Quit
	OpenOfficialWebsite
	SelectFileFailed
	SelectDirFailed
	SaveConfigFailed
	CopiedToClipboard
	ClipboardNoFiles
	NothingSelected
	ItemsSelected
	SelectionCleared
)

var _ZH_CN = map[int]string{
	PickFile:            "选择文件",
	PickFiles:           "选择多个文件",
	PickFolder:          "选择文件夹",
	AddFromClipboard:    "从剪切板添加",
	ClearSelection:      "清空选择",
	HideIcon:            "隐藏图标",
	OnlyOnce:            "仅一次",
	HideForever:         "永久隐藏",
	AutoStart:           "开机自启",
	Quit:                "退出",
	OpenOfficialWebsite: "打开官网",
	SelectFileFailed:    "选择文件失败",
	SelectDirFailed:     "选择文件夹失败",
	SaveConfigFailed:    "保存配置失败",
	CopiedToClipboard:   "路径已复制到剪切板",
	ClipboardNoFiles:    "剪切板中没有文件",
	NothingSelected:     "未选择任何内容",
	ItemsSelected:       "个项目已选择",
	SelectionCleared:    "已清空选择",
}

var _EN_US = map[int]string{
	PickFile:            "Pick File",
	PickFiles:           "Pick Files",
	PickFolder:          "Pick Folder",
	AddFromClipboard:    "Add From Clipboard",
	ClearSelection:      "Clear Selection",
	HideIcon:            "Hide Icon",
	OnlyOnce:            "Only Once",
	HideForever:         "Hide Forever",
	AutoStart:           "Auto Start",
	Quit:                "Quit",
	OpenOfficialWebsite: "Open Website",
	SelectFileFailed:    "Select File Failed",
	SelectDirFailed:     "Select Folder Failed",
	SaveConfigFailed:    "Save Config Failed",
	CopiedToClipboard:   "Paths copied to clipboard",
	ClipboardNoFiles:    "No files on the clipboard",
	NothingSelected:     "Nothing selected",
	ItemsSelected:       "items selected",
	SelectionCleared:    "Selection cleared",
}

var SupportedLanguageCode = []string{EN_US_CODE, ZH_CN_CODE}

var curLang = EN_US_CODE

const ZH_CN_CODE = "zh"
const EN_US_CODE = "en"

func SetLanguage(l string) {
	for _, v := range SupportedLanguageCode {
		if v == l {
			curLang = l
			break
		}
	}
}

func GetLanguage() string {
	return curLang
}

func Translate(key int) string {
	switch curLang {
	case ZH_CN_CODE:
		return _ZH_CN[key]
	case EN_US_CODE:
		return _EN_US[key]
	default:
		return _EN_US[key]
	}
}
