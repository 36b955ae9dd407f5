package main

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/wumansgy/goEncrypt/aes"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

type CbcAESCrypt struct {
	// contains filtered or unexported fields
	secretKey []byte
}

// NewAESCryptFromHex 创建AES加密器, HexSecretKey为16进制字符串
// CBC模式，PKCS5填充
func NewAESCryptFromHex(HexSecretKey string) (*CbcAESCrypt, error) {
	// 128, 192, or 256 bits
	if len(HexSecretKey) != 32 && len(HexSecretKey) != 48 && len(HexSecretKey) != 64 {
		return nil, errors.New("HexSecretKey length must be 32, 48 or 64")
	}
	secretKey, err := hex.DecodeString(HexSecretKey)
	return &CbcAESCrypt{secretKey: secretKey}, err
}

// Encrypt 加密后返回 密文+16字节IV。
func (a *CbcAESCrypt) Encrypt(plainText []byte) ([]byte, error) {
	if len(plainText) == 0 {
		return nil, errors.New("plainText is empty")
	}
	IV := a.rand16Byte()
	rawCipherText, err := aes.AesCbcEncrypt(plainText, a.secretKey, IV)
	if err != nil {
		return nil, err
	}
	rawCipherText = append(rawCipherText, IV...)
	return rawCipherText, nil
}

// Decrypt 解密，cipherText 为 密文+16字节IV。
func (a *CbcAESCrypt) Decrypt(cipherText []byte) ([]byte, error) {
	if len(cipherText) <= 16 {
		return nil, errors.New("cipherText length must be greater than 16")
	}
	IV := cipherText[len(cipherText)-16:]
	cipherText = cipherText[:len(cipherText)-16]
	return aes.AesCbcDecrypt(cipherText, a.secretKey, IV)
}

func (a *CbcAESCrypt) rand16Byte() []byte {
	return randNByte(16)
}

// randNByte returns a slice of n random bytes.
func randNByte(n int) []byte {
	b := make([]byte, n)
	rand.Read(b)
	return b
}

func OpenUrl(uri string) error {
	switch runtime.GOOS {
	case "windows":
		cmd := exec.Command("cmd", "/c", "start", uri)
		return cmd.Start()
	case "darwin":
		cmd := exec.Command("open", uri)
		return cmd.Start()
	case "linux":
		cmd := exec.Command("xdg-open", uri)
		return cmd.Start()
	default:
		return fmt.Errorf("don't know how to open things on %s platform", runtime.GOOS)
	}
}

type StartHelper struct {
	// 可执行文件名称
	ExeName string
}

// 文件或文件夹是否存在
func FileOrDirIsExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}

func NewStartHelper(exeName string) *StartHelper {
	return &StartHelper{ExeName: exeName}
}

// GBK is the GBK encoding. It encodes an extension of the GB2312 character set
// and is also known as Code Page 936.
func UTF8ToGBK(b []byte) []byte {
	tfr := transform.NewReader(bytes.NewReader(b), simplifiedchinese.GBK.NewEncoder())
	d, e := io.ReadAll(tfr)
	if e != nil {
		return nil
	}
	return d
}

func (s *StartHelper) SetAutoStart() error {
	if runtime.GOOS == "darwin" {
		return s.setMacAutoStart()
	}
	if runtime.GOOS != "windows" {
		return fmt.Errorf("不支持的操作系统: %v", runtime.GOOS)
	}
	// C:\Users\*\AppData\Roaming\Microsoft\Windows\Start Menu\Programs\Startup
	winUserHomeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("获取当前Windows用户的home directory失败: %v", err)
	}
	startFile := winUserHomeDir + `\AppData\Roaming\Microsoft\Windows\Start Menu\Programs\Startup` +
		`\` + s.ExeName + `_start.vbs`

	path, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("获取当前文件目录失败: %v", err)
	}
	path = strings.Replace(path, `\`, `\\`, -1)

	var content string
	content += `Set objShell = CreateObject("WScript.Shell")` + "\r\n"
	content += `objShell.CurrentDirectory = "` + path + `"` + "\r\n"
	content += `objShell.Run "powershell /c ` + ".\\" + s.ExeName + `"` + `,0`
	contentBytes := UTF8ToGBK([]byte(content))
	oldContent, err := os.ReadFile(startFile)
	if err == nil && bytes.Equal(oldContent, contentBytes) {
		return nil
	}
	file, err := os.OpenFile(startFile, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0666)
	if err != nil {
		return fmt.Errorf("创建文件失败: %v", err)
	}
	defer file.Close()
	_, err = file.Write(contentBytes)
	if err != nil {
		return fmt.Errorf("写入文件失败: %v", err)
	}
	return nil
}

func (s *StartHelper) UnSetAutoStart() error {
	if runtime.GOOS == "darwin" {
		return s.unSetMacAutoStart()
	}
	winUserHomeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("获取当前Windows用户的home directory失败: %v", err)
	}
	startFile := winUserHomeDir + `\AppData\Roaming\Microsoft\Windows\Start Menu\Programs\Startup` +
		`\` + s.ExeName + `_start.vbs`

	if !FileOrDirIsExist(startFile) {
		return nil
	}

	err = os.Remove(startFile)
	if err != nil {
		return fmt.Errorf("删除文件失败: %v", err)
	}
	return nil
}

func (s *StartHelper) setMacAutoStart() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("获取当前用户的home directory失败: %v", err)
	}
	startFile := homeDir + `/Library/LaunchAgents/` + s.ExeName + `_start.plist`
	curPath, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("获取当前文件目录失败: %v", err)
	}
	macListFile := `
	<?xml version="1.0" encoding="UTF-8"?>
	<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
	<plist version="1.0">
	<dict>
		<key>Label</key>
		<string>` + s.ExeName + `_start</string>
		<key>ProgramArguments</key>
			<array>
				<string>` + curPath + `/` + s.ExeName + `</string>
			</array>
		<key>RunAtLoad</key>
		<true/>
		<key>WorkingDirectory</key>
		<string>` + curPath + `</string>
		<key>StandardErrorPath</key>
		<string>/tmp/` + s.ExeName + `_start.err</string>
		<key>StandardOutPath</key>
		<string>/tmp/` + s.ExeName + `_start.out</string>
	</dict>
	</plist>
	`
	oldContent, err := os.ReadFile(startFile)
	if err == nil && bytes.Equal(oldContent, []byte(macListFile)) {
		return nil
	}
	file, err := os.OpenFile(startFile, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0666)
	if err != nil {
		return fmt.Errorf("创建文件失败: %v", err)
	}
	defer file.Close()
	_, err = file.Write([]byte(macListFile))
	if err != nil {
		return fmt.Errorf("写入文件失败: %v", err)
	}
	return nil
}

func (s *StartHelper) unSetMacAutoStart() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("获取当前用户的home directory失败: %v", err)
	}
	startFile := homeDir + `/Library/LaunchAgents/` + s.ExeName + `_start.plist`
	if !FileOrDirIsExist(startFile) {
		return nil
	}
	err = os.Remove(startFile)
	if err != nil {
		return fmt.Errorf("删除文件失败: %v", err)
	}
	return nil
}

// 仅在有写入时才创建文件
type LazyFileWriter struct {
	filePath string
	file     *os.File
}

func (w *LazyFileWriter) Write(p []byte) (n int, err error) {
	if w.file == nil {
		w.file, err = os.OpenFile(w.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return 0, err
		}
	}
	return w.file.Write(p)
}

func (w *LazyFileWriter) Close() error {
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}

// Name returns the name of the file as presented to Open.
func (w *LazyFileWriter) Name() string {
	if w.file != nil {
		return w.file.Name()
	}
	return filepath.Base(w.filePath)
}

// 是否已经创建了文件
func (w *LazyFileWriter) IsCreated() bool {
	return w.file != nil
}

func NewLazyFileWriter(filePath string) *LazyFileWriter {
	return &LazyFileWriter{filePath: filePath}
}

type Pair[T1 any, T2 any] struct {
	First  T1
	Second T2
}

func NewPair[T1 any, T2 any](first T1, second T2) Pair[T1, T2] {
	return Pair[T1, T2]{First: first, Second: second}
}
