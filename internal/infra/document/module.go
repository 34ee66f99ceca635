package document

import "go.uber.org/fx"

// Module provides the document analyzer and converter
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAnalyzer, NewConverter),
)
