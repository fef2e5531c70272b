// Package ui holds the terminal pieces of create-makeabet: the question
// form, progress spinners and the closing summary.
package ui
