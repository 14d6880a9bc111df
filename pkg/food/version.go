package food

// Version is the fooditems release reported by the CLI.
const Version = "0.1.0"
