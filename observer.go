package diagcat

//go:generate mockgen -source=$GOFILE -package mock_diagcat -destination=test/mock/$GOFILE

// Observer receives non-fatal notices from the text backends: raw ids in a
// localization file that match nothing in the compiled catalog. Calls are
// synchronous on the caller's goroutine, during initialization only. A nil
// observer is silent.
type Observer interface {
	OnUnknownID(locale string, rawID string)
}

func notifyUnknownID(observer Observer, locale string, rawID string) {
	if observer == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	observer.OnUnknownID(locale, rawID)
}
