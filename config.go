package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/Doraemonkeys/mylog"
	"github.com/doraemonkeys/windpick/language"
	"github.com/doraemonkeys/windpick/picker"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerPort   string `yaml:"serverPort"`
	SecretKeyHex string `yaml:"secretKeyHex"`
	// 系统托盘图标
	ShowSystrayIcon bool `yaml:"showSystrayIcon"`
	// 自启动
	AutoStart bool   `yaml:"autoStart"`
	Language  string `yaml:"language"`
	// 对话框路径缓冲区容量(UTF-16字符)
	DialogBufferSize int `yaml:"dialogBufferSize"`
}

var configFilePath string = "config.yaml"
var GloballCnf *Config
var startHelper *StartHelper

func initGlobalConfig() Config {
	startHelper = NewStartHelper(ProgramName)

	if _, err := os.Stat(configFilePath); err != nil {
		cnf := generateDefaultConfig()
		GloballCnf = &cnf
		err := GloballCnf.SaveAndSet()
		if err != nil {
			logrus.Panic(err)
		}
		return *GloballCnf
	}
	file, err := os.Open(configFilePath)
	if err != nil {
		logrus.Panic(err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	err = decoder.Decode(&GloballCnf)
	if err != nil {
		logrus.Panic(err)
	}
	err = GloballCnf.Set()
	if err != nil {
		logrus.Panic(err)
	}
	language.SetLanguage(GloballCnf.Language)
	return *GloballCnf
}

func (cnf Config) EmptyCheck() error {
	if cnf.ServerPort == "" {
		return fmt.Errorf("serverPort is empty")
	}
	if cnf.SecretKeyHex == "" {
		return fmt.Errorf("secretKeyHex is empty")
	}
	if cnf.DialogBufferSize <= 0 {
		return fmt.Errorf("dialogBufferSize must be positive")
	}
	return nil
}

func (cnf Config) SaveAndSet() error {
	err := cnf.EmptyCheck()
	if err != nil {
		return err
	}
	if cnf.AutoStart {
		err = startHelper.SetAutoStart()
	} else {
		err = startHelper.UnSetAutoStart()
	}
	if err != nil {
		return err
	}
	return saveConfig(configFilePath, cnf)
}

func (cnf Config) Save() error {
	err := cnf.EmptyCheck()
	if err != nil {
		return err
	}
	return saveConfig(configFilePath, cnf)
}

func (cnf Config) Set() error {
	err := cnf.EmptyCheck()
	if err != nil {
		return err
	}
	if cnf.AutoStart {
		err = startHelper.SetAutoStart()
	} else {
		err = startHelper.UnSetAutoStart()
	}
	return err
}

func generateDefaultConfig() Config {
	var cnf Config
	cnf.ServerPort = "6779"
	cnf.SecretKeyHex = generateSecretKeyHex(32)
	cnf.ShowSystrayIcon = true
	cnf.AutoStart = true
	cnf.Language = language.GetLanguage()
	cnf.DialogBufferSize = picker.DefaultBufferSize
	return cnf
}

func saveConfig(path string, cnf Config) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	yamlData, err := yaml.Marshal(cnf)
	if err != nil {
		return err
	}
	_, err = file.Write(yamlData)
	return err
}

func generateSecretKeyHex(byteLen int) string {
	secretKey := randNByte(byteLen)
	return hex.EncodeToString(secretKey)
}

func InitGlobalLogger() {
	var logCnf = mylog.LogConfig{}
	logCnf.MaxLogSize = 1024 * 1024 * 10
	logCnf.MaxKeepDays = 100
	logCnf.NoConsole = true
	logCnf.DisableWriterBuffer = true
	err := mylog.InitGlobalLogger(logCnf)
	if err != nil {
		panic(err)
	}
}
