package networking

import (
	"net"
	"net/http"
	"sync"
	"time"

	"eccli/config"
)

var (
	defaultClient     *http.Client
	defaultClientOnce sync.Once
	cdnClient         *http.Client
	cdnClientOnce     sync.Once
)

// GetDefaultHTTPClient returns the shared client used for API calls.
func GetDefaultHTTPClient() *http.Client {
	defaultClientOnce.Do(func() {
		defaultClient = &http.Client{
			Transport: newConfiguredTransport(),
			Timeout:   60 * time.Second,
		}
	})
	return defaultClient
}

// GetCDNHTTPClient returns the shared client used for asset downloads.
// With EC_HTTP3 enabled it speaks HTTP/3; proxied setups stay on TCP
// since QUIC does not traverse HTTP proxies.
func GetCDNHTTPClient() *http.Client {
	cdnClientOnce.Do(func() {
		if config.Env.HTTP3 && config.Env.HTTPProxy == "" && config.Env.HTTPSProxy == "" {
			cdnClient = NewHTTP3Client()
			return
		}
		cdnClient = &http.Client{
			Transport: newConfiguredTransport(),
			Timeout:   60 * time.Second,
		}
	})
	return cdnClient
}

func GetBaseTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConnsPerHost:   100,
		MaxConnsPerHost:       100,
		ResponseHeaderTimeout: 10 * time.Second,
		DisableCompression:    false,
	}
}

func newConfiguredTransport() *http.Transport {
	transport := GetBaseTransport()
	if config.Env.HTTPProxy != "" || config.Env.HTTPSProxy != "" {
		configureProxyTransport(transport, config.Env)
	}
	return transport
}
