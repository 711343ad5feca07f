package commands

// RenderDiff exports renderDiff for testing.
var RenderDiff = renderDiff //nolint:gochecknoglobals // test export
