package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eccli/config"
)

// withCleanEnv isolates cookie resolution from the developer's real
// configuration and home directory.
func withCleanEnv(t *testing.T) {
	t.Helper()
	old := *config.Env
	t.Cleanup(func() { *config.Env = old })
	config.Env.Cookie = ""
	config.Env.CookieFile = ""
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestResolveCookieFromConfig(t *testing.T) {
	withCleanEnv(t)
	config.Env.Cookie = " everybody-codes=abc123 \n"

	cookie, err := resolveCookie()
	require.NoError(t, err)
	assert.Equal(t, "abc123", cookie)
}

func TestResolveCookieMissing(t *testing.T) {
	withCleanEnv(t)

	_, err := resolveCookie()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCookie)
}

func TestResolveCookieFromHomeFile(t *testing.T) {
	withCleanEnv(t)
	home := os.Getenv("HOME")
	require.NoError(t, os.WriteFile(
		filepath.Join(home, ".everybodycodes.cookie"),
		[]byte("homecookie\n"), 0600))

	cookie, err := resolveCookie()
	require.NoError(t, err)
	assert.Equal(t, "homecookie", cookie)
}

func TestResolveCookieFromConfigDir(t *testing.T) {
	withCleanEnv(t)
	configDir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "everybodycodes")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "cookie"),
		[]byte("dircookie"), 0600))

	cookie, err := resolveCookie()
	require.NoError(t, err)
	assert.Equal(t, "dircookie", cookie)
}

func TestResolveCookieFromJar(t *testing.T) {
	withCleanEnv(t)
	jar := filepath.Join(t.TempDir(), "cookies.txt")
	content := "# Netscape HTTP Cookie File\n" +
		"everybody.codes\tTRUE\t/\tTRUE\t2000000000\teverybody-codes\tjarcookievalue\n"
	require.NoError(t, os.WriteFile(jar, []byte(content), 0600))
	config.Env.CookieFile = jar

	cookie, err := resolveCookie()
	require.NoError(t, err)
	assert.Equal(t, "jarcookievalue", cookie)
}

func TestResolveCookieFromBareValueFile(t *testing.T) {
	withCleanEnv(t)
	file := filepath.Join(t.TempDir(), "cookie.txt")
	require.NoError(t, os.WriteFile(file, []byte("everybody-codes=barevalue\n"), 0600))
	config.Env.CookieFile = file

	cookie, err := resolveCookie()
	require.NoError(t, err)
	assert.Equal(t, "barevalue", cookie)
}

func TestResolveCookieJarWithoutMatch(t *testing.T) {
	withCleanEnv(t)
	jar := filepath.Join(t.TempDir(), "cookies.txt")
	content := "# Netscape HTTP Cookie File\n" +
		"example.com\tTRUE\t/\tTRUE\t2000000000\tsession\tother\n"
	require.NoError(t, os.WriteFile(jar, []byte(content), 0600))
	config.Env.CookieFile = jar

	_, err := resolveCookie()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "everybody-codes")
}

func TestSanitizeCookie(t *testing.T) {
	assert.Equal(t, "abc", sanitizeCookie("abc"))
	assert.Equal(t, "abc", sanitizeCookie("  abc\n"))
	assert.Equal(t, "abc", sanitizeCookie("everybody-codes=abc"))
	assert.Equal(t, "", sanitizeCookie("   "))
}
