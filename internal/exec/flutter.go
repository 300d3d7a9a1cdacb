package exec

import "context"

// PubGet runs `flutter pub get` in the project directory.
func (e *Executor) PubGet(ctx context.Context) error {
	return e.RunWithSpinner(ctx, "Resolving pub dependencies", "flutter", "pub", "get")
}

// DartFormat runs `dart format` over the generated lib/ tree.
func (e *Executor) DartFormat(ctx context.Context) error {
	return e.RunWithSpinner(ctx, "Formatting Dart sources", "dart", "format", "lib")
}
