package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.design/x/clipboard"
)

var crypter *CbcAESCrypt

const ProgramName = "WindPick"
const ProgramVersion = "1.0.0"
const ProgramUrl = "https://github.com/doraemonkeys/windpick"

// go build -ldflags "-H=windowsgui"
func main() {
	InitGlobalLogger()
	cnf := initGlobalConfig()
	var err error
	crypter, err = NewAESCryptFromHex(cnf.SecretKeyHex)
	if err != nil {
		logrus.Panic(err)
	}
	InitTLSConfig()

	if err := clipboard.Init(); err != nil {
		logrus.Error("clipboard init failed:", err)
	} else {
		clipboardReady = true
	}
	var quitCh = make(chan bool)
	if GloballCnf.ShowSystrayIcon {
		quitCh = ShowStatusBar()
	}
	gin.SetMode(gin.ReleaseMode)
	go RunPickServer()

	for {
		q := <-quitCh
		if q {
			break
		}
	}
}
