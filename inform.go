package main

import (
	"github.com/go-toast/toast"
	"github.com/sirupsen/logrus"
)

// Inform 发出通知
func Inform(content string) {
	notification := toast.Notification{
		AppID:   ProgramName,
		Title:   ProgramName,
		Message: content,
	}
	err := notification.Push()
	if err != nil {
		logrus.Error(err)
	}
}
