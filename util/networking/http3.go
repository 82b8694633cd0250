package networking

import (
	"net/http"
	"time"

	"github.com/quic-go/quic-go"
	"github.com/quic-go/quic-go/http3"
)

// NewHTTP3Client builds a client that talks QUIC directly. The CDN
// advertises h3 and serving assets over it skips the TCP+TLS handshake
// on cold starts.
func NewHTTP3Client() *http.Client {
	return &http.Client{
		Transport: &http3.Transport{
			QUICConfig: &quic.Config{
				MaxIdleTimeout:  90 * time.Second,
				KeepAlivePeriod: 30 * time.Second,
			},
		},
		Timeout: 60 * time.Second,
	}
}
