package web

import "embed"

// Static embeds the browser UI.
//
//go:embed static/*
var Static embed.FS
