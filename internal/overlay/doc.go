// Package overlay copies an app template over a generated project and patches
// the chosen theme back into the files the template may have replaced.
package overlay
