package model

// Package model defines the domain values shared by the settings window: the
// closed set of sidebar items and their display order. Values here carry no Fyne
// types so they can be used from any layer.
