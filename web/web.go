package web

import "embed"

// content holds the browser client: page templates and static assets.
//
//go:embed templates/* static/*
var content embed.FS
