package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	SetLanguage(EN_US_CODE)
	assert.Equal(t, "Pick Folder", Translate(PickFolder))

	SetLanguage(ZH_CN_CODE)
	assert.Equal(t, "选择文件夹", Translate(PickFolder))

	// unsupported codes are ignored
	SetLanguage("fr")
	assert.Equal(t, ZH_CN_CODE, GetLanguage())
	assert.Equal(t, "选择文件夹", Translate(PickFolder))

	SetLanguage(EN_US_CODE)
}

func TestAllKeysTranslated(t *testing.T) {
	for key := PickFile; key <= SelectionCleared; key++ {
		assert.NotEmpty(t, _EN_US[key], "en key %d", key)
		assert.NotEmpty(t, _ZH_CN[key], "zh key %d", key)
	}
}
