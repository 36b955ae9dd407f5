package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecretKeyHex = "aaaabbbbccccddddeeeeffff0000111122223333444455556666777788889999"

func initTestCrypter(t *testing.T) {
	t.Helper()
	var err error
	crypter, err = NewAESCryptFromHex(testSecretKeyHex)
	require.NoError(t, err)
}

func TestVerifyTimeIpToken(t *testing.T) {
	initTestCrypter(t)

	token, err := buildTimeIpToken(time.Now(), "192.168.1.5")
	require.NoError(t, err)
	assert.NoError(t, verifyTimeIpToken(token, "192.168.1.5"))

	// unknown local ip skips the ip comparison
	assert.NoError(t, verifyTimeIpToken(token, ""))

	assert.Error(t, verifyTimeIpToken(token, "192.168.1.6"))
}

func TestVerifyTimeIpTokenExpired(t *testing.T) {
	initTestCrypter(t)

	token, err := buildTimeIpToken(time.Now().Add(-time.Minute), "10.0.0.2")
	require.NoError(t, err)
	err = verifyTimeIpToken(token, "10.0.0.2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrorExpiredAuthData)
}

func TestVerifyTimeIpTokenGarbage(t *testing.T) {
	initTestCrypter(t)

	assert.Error(t, verifyTimeIpToken("not-hex", ""))
	assert.Error(t, verifyTimeIpToken("abcd", ""))

	// valid hex, wrong key material
	other, err := NewAESCryptFromHex("0000000000000000000000000000000000000000000000000000000000000000")
	require.NoError(t, err)
	forged, err := other.Encrypt([]byte(time.Now().Format(TimeFormat) + "|1.2.3.4"))
	require.NoError(t, err)
	assert.Error(t, verifyTimeIpToken(hex.EncodeToString(forged), ""))
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	route := gin.New()
	route.NoRoute(notFoundHandler)
	route.POST("/ping", pingHandler)
	route.POST("/selection", selectionHandler)
	return route
}

func postJSON(t *testing.T, route *gin.Engine, path string, head reqHead) (*httptest.ResponseRecorder, RespHead) {
	t.Helper()
	body, err := json.Marshal(head)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	route.ServeHTTP(w, req)
	var resp RespHead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestSelectionHandler(t *testing.T) {
	initTestCrypter(t)
	clearSelection()
	addSelectedPaths([]string{`C:\Dir\a.txt`, `C:\Dir\b.txt`})
	defer clearSelection()

	token, err := buildTimeIpToken(time.Now(), "127.0.0.1")
	require.NoError(t, err)

	w, resp := postJSON(t, newTestRouter(), "/selection", reqHead{TimeIp: token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 200, resp.Code)
	require.Len(t, resp.Paths, 2)
	assert.Equal(t, `C:\Dir\a.txt`, resp.Paths[0].Path)
	assert.Equal(t, `C:\Dir\b.txt`, resp.Paths[1].Path)
}

func TestSelectionHandlerAuth(t *testing.T) {
	initTestCrypter(t)

	w, resp := postJSON(t, newTestRouter(), "/selection", reqHead{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 400, resp.Code)

	stale, err := buildTimeIpToken(time.Now().Add(-time.Hour), "127.0.0.1")
	require.NoError(t, err)
	w, resp = postJSON(t, newTestRouter(), "/selection", reqHead{TimeIp: stale})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 401, resp.Code)
}

func TestPingHandler(t *testing.T) {
	initTestCrypter(t)

	token, err := buildTimeIpToken(time.Now(), "127.0.0.1")
	require.NoError(t, err)
	encrypted, err := crypter.Encrypt([]byte("ping"))
	require.NoError(t, err)

	w, resp := postJSON(t, newTestRouter(), "/ping", reqHead{
		TimeIp: token,
		Data:   hex.EncodeToString(encrypted),
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 200, resp.Code)

	pong, err := hex.DecodeString(resp.Data)
	require.NoError(t, err)
	plain, err := crypter.Decrypt(pong)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(plain))
}

func TestPingHandlerRejectsWrongBody(t *testing.T) {
	initTestCrypter(t)

	token, err := buildTimeIpToken(time.Now(), "127.0.0.1")
	require.NoError(t, err)
	encrypted, err := crypter.Encrypt([]byte("pong"))
	require.NoError(t, err)

	w, resp := postJSON(t, newTestRouter(), "/ping", reqHead{
		TimeIp: token,
		Data:   hex.EncodeToString(encrypted),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 400, resp.Code)
}

func TestPathInfos(t *testing.T) {
	dir := t.TempDir()
	file := dir + "/a.bin"
	require.NoError(t, os.WriteFile(file, make([]byte, 128), 0644))

	infos := pathInfos([]string{file, dir + "/missing.bin"})
	require.Len(t, infos, 2)
	assert.Equal(t, int64(128), infos[0].Size)
	// missing files keep their path with zero size
	assert.Equal(t, int64(0), infos[1].Size)
}
