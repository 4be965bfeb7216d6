// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Text directions.
const (
	LTR = "ltr"
	RTL = "rtl"
)

// scripts written right to left.
var rtlScripts = map[string]bool{
	"Arab": true,
	"Hebr": true,
	"Thaa": true,
	"Syrc": true,
	"Nkoo": true,
	"Adlm": true,
}

// Info describes a locale for clients building a language switcher.
type Info struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Direction  string `json:"direction"`
	IsDefault  bool   `json:"is_default"`
}

// Describe returns display information for code. Unknown codes keep the code
// as their name.
func Describe(code string) Info {
	info := Info{Code: code, Name: code, NativeName: code, Direction: LTR}

	tag, err := language.Parse(code)
	if err != nil {
		return info
	}
	if name := display.English.Tags().Name(tag); name != "" {
		info.Name = name
	}
	if name := display.Self.Name(tag); name != "" {
		info.NativeName = name
	}
	if script, _ := tag.Script(); rtlScripts[script.String()] {
		info.Direction = RTL
	}
	return info
}

// Describe returns Info for every supported locale, default first.
func (r *Resolver) Describe() []Info {
	out := make([]Info, 0, len(r.supported))
	for _, code := range r.supported {
		info := Describe(code)
		info.IsDefault = code == r.defaultLocale
		out = append(out, info)
	}
	return out
}
