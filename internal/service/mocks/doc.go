// Package mocks holds hand-maintained testify mocks for the service layer
// dependencies. Each mock is asserted against its interface in the tests of
// the consuming package, so a signature change fails to compile there.
package mocks
