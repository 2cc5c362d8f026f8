package diagcat

// Config selects the locale and resource layout for ProducerFor.
type Config struct {
	// Locale is the language tag to resolve; matched against filenames
	// exactly, no fallback chains.
	Locale string
	// ResourcePath is the directory holding per-locale files.
	ResourcePath string
	// DebugNames appends " [SYMBOLIC_NAME]" to every translated message.
	DebugNames bool
	// Observer receives unknown-id notices from the text backends.
	Observer Observer
}

// localizedRecord is one record of the structured grammar:
//
//	- id: SYMBOLIC_NAME
//	  msg: "translated text"
type localizedRecord struct {
	ID  string `yaml:"id"`
	Msg string `yaml:"msg"`
}
