package client

import "github.com/pkg/errors"

var (
	// ErrMissingCookie means no session cookie was found in the
	// environment, a cookie jar, or the well-known cookie files.
	ErrMissingCookie = errors.New("no session cookie; set EC_COOKIE or create ~/.everybodycodes.cookie")

	// ErrAlreadySubmitted is the server's verdict when a part was
	// answered before (HTTP 409).
	ErrAlreadySubmitted = errors.New("answer already submitted for this part")

	// ErrQuestNotFound is the CDN's 404 for an unreleased or invalid
	// quest.
	ErrQuestNotFound = errors.New("quest assets not found (not released yet?)")
)
