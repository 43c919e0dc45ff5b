// Package cli implements the uploader command line.
//
// Commands
//
//	upload  -tipo CATEGORY -mun CODE [-obra ID] FILE   upload one file
//	history [-n N]                                     show recent attempts
//	help                                               show usage
//
// "upload" is the default command, so "uploader -tipo agua -mun M01 a.pdf"
// works as well. When standard input is a terminal, a missing category or
// municipality is asked for interactively.
//
// Exit codes: 0 when the upload is assumed successful, 1 when it failed, 2 on
// usage or configuration errors.
package cli
