// Package generate builds the configuration files layered on top of the base
// project. Every generator is a pure function of the resolved configuration,
// so equal configurations always produce byte-identical output.
package generate
