package main

import (
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/doraemonkeys/windpick/picker"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const TimeFormat = "2006-01-02 15:04:05"
const MaxTimeDiff float64 = 10

const (
	// 无效的验证数据
	ErrorInvalidAuthData = "invalid auth data"
	// 过期的验证数据
	ErrorExpiredAuthData = "expired auth data"
	// 损坏的数据
	ErrorInvalidData = "invalid data"
)

type reqHead struct {
	// hex(AES(time|ip))
	TimeIp string `json:"timeIp"`
	Mode   string `json:"mode"`
	// hex(AES(body)), 仅ping使用
	Data string `json:"data"`
}

type RespHead struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	// hex(AES(body)), 仅ping使用
	Data  string     `json:"data,omitempty"`
	Paths []pathInfo `json:"paths,omitempty"`
}

type pathInfo struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

var panicWriter = NewLazyFileWriter("panic.log")

// RunPickServer 启动HTTPS服务, 允许已配对的设备远程打开选择对话框
func RunPickServer() {
	route := gin.New()
	route.Use(gin.RecoveryWithWriter(panicWriter))
	route.NoRoute(notFoundHandler)
	route.POST("/ping", pingHandler)
	route.POST("/pick", pickHandler)
	route.POST("/selection", selectionHandler)
	err := route.RunTLS(":"+GloballCnf.ServerPort, certFile, keyFile)
	if err != nil {
		logrus.Panic(err)
	}
}

func notFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, RespHead{Code: 404, Msg: "not found"})
}

// verifyTimeIpToken 解密 time|ip 令牌并校验时效与目标ip。
// localIP 为本机在客户端眼中的ip。
func verifyTimeIpToken(token string, localIP string) error {
	tokenBytes, err := hex.DecodeString(token)
	if err != nil {
		return fmt.Errorf("%s: %v", ErrorInvalidAuthData, err)
	}
	decrypted, err := crypter.Decrypt(tokenBytes)
	if err != nil {
		return fmt.Errorf("%s: %v", ErrorInvalidAuthData, err)
	}
	// 2006-01-02 15:04:05
	timeAndIPStr := string(decrypted)
	timeLen := len(TimeFormat)
	if len(timeAndIPStr) < timeLen+1 {
		return fmt.Errorf("%s: token too short", ErrorInvalidAuthData)
	}
	timeStr := timeAndIPStr[:timeLen]
	ip := timeAndIPStr[timeLen+1:]
	t, err := time.Parse(TimeFormat, timeStr)
	if err != nil {
		return fmt.Errorf("%s: %v", ErrorInvalidAuthData, err)
	}
	if time.Since(t).Seconds() > MaxTimeDiff {
		return fmt.Errorf("%s: %s", ErrorExpiredAuthData, t.String())
	}
	if localIP != "" && ip != localIP {
		return fmt.Errorf("%s: ip not match: %s != %s", ErrorInvalidAuthData, ip, localIP)
	}
	return nil
}

// buildTimeIpToken 生成 hex(AES(time|ip)) 令牌, 客户端侧的镜像实现
func buildTimeIpToken(now time.Time, ip string) (string, error) {
	encrypted, err := crypter.Encrypt([]byte(now.Format(TimeFormat) + "|" + ip))
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(encrypted), nil
}

func localIPOf(c *gin.Context) string {
	laddr, ok := c.Request.Context().Value(http.LocalAddrContextKey).(net.Addr)
	if !ok {
		return ""
	}
	addr := laddr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	if strings.Contains(addr, ":") {
		return strings.Split(addr, ":")[0]
	}
	return addr
}

func commonAuth(c *gin.Context) (reqHead, bool) {
	var head reqHead
	if err := c.ShouldBindJSON(&head); err != nil {
		logrus.Error("bind request failed, err:", err)
		c.JSON(http.StatusBadRequest, RespHead{Code: 400, Msg: ErrorInvalidData})
		return head, false
	}
	if head.TimeIp == "" {
		c.JSON(http.StatusBadRequest, RespHead{Code: 400, Msg: "time-ip is empty"})
		return head, false
	}
	if err := verifyTimeIpToken(head.TimeIp, localIPOf(c)); err != nil {
		logrus.Info("auth failed: ", err)
		c.JSON(http.StatusUnauthorized, RespHead{Code: 401, Msg: err.Error()})
		return head, false
	}
	return head, true
}

func pingHandler(c *gin.Context) {
	head, ok := commonAuth(c)
	if !ok {
		return
	}
	bodyBytes, err := hex.DecodeString(head.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, RespHead{Code: 400, Msg: ErrorInvalidData})
		return
	}
	decryptedBody, err := crypter.Decrypt(bodyBytes)
	if err != nil {
		logrus.Error("decrypt body error: ", err)
		c.JSON(http.StatusBadRequest, RespHead{Code: 400, Msg: ErrorInvalidData})
		return
	}
	if string(decryptedBody) != "ping" {
		logrus.Error("invalid ping data: ", string(decryptedBody))
		c.JSON(http.StatusBadRequest, RespHead{Code: 400, Msg: ErrorInvalidData})
		return
	}
	encryptedResp, err := crypter.Encrypt([]byte("pong"))
	if err != nil {
		logrus.Error("encrypt body error: ", err)
		c.JSON(http.StatusInternalServerError, RespHead{Code: 500, Msg: "internal error"})
		return
	}
	c.JSON(http.StatusOK, RespHead{Code: 200, Msg: "验证成功", Data: hex.EncodeToString(encryptedResp)})
}

func pickHandler(c *gin.Context) {
	head, ok := commonAuth(c)
	if !ok {
		return
	}
	mode, err := picker.ParseMode(head.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, RespHead{Code: 400, Msg: err.Error()})
		return
	}
	paths, err := pickViaDialog(mode)
	if err != nil {
		logrus.Error("failed to pick items:", err)
		c.JSON(http.StatusInternalServerError, RespHead{Code: 500, Msg: err.Error()})
		return
	}
	c.JSON(http.StatusOK, RespHead{Code: 200, Paths: pathInfos(paths)})
}

func selectionHandler(c *gin.Context) {
	_, ok := commonAuth(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, RespHead{Code: 200, Paths: pathInfos(currentSelection())})
}

func pathInfos(paths []string) []pathInfo {
	infos := make([]pathInfo, 0, len(paths))
	for _, path := range paths {
		var pi pathInfo
		pi.Path = path
		fileInfo, err := os.Stat(path)
		if err != nil {
			logrus.Error("stat file error: ", err)
		} else {
			pi.Size = fileInfo.Size()
		}
		infos = append(infos, pi)
	}
	return infos
}
