package main

import (
	"github.com/fatih/color"
)

// Colors are the sprintf functions used to render results.
type Colors struct {
	Pass    func(string, ...any) string
	Fail    func(string, ...any) string
	Insert  func(string, ...any) string
	Delete  func(string, ...any) string
	Comment func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Pass:    color.GreenString,
		Fail:    color.RedString,
		Insert:  color.RGB(128, 216, 236).SprintfFunc(),
		Delete:  color.RGB(255, 0, 196).SprintfFunc(),
		Comment: color.RGB(74, 92, 138).SprintfFunc(),
	}
}
