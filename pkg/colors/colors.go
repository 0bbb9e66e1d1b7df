package colors

import (
	"fmt"
	"time"
)

// ANSI color codes
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Gray    = "\033[90m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
	BrightCyan   = "\033[96m"
	BrightWhite  = "\033[97m"
)

// PrintInfo prints informational messages with cyan color
func PrintInfo(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s]%s %s%s%s\n",
		Gray, timestamp, Reset,
		BrightCyan, fmt.Sprintf(format, args...), Reset)
}

// PrintSuccess prints success messages with green color
func PrintSuccess(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s]%s %s%s%s\n",
		Gray, timestamp, Reset,
		BrightGreen, fmt.Sprintf(format, args...), Reset)
}

// PrintWarning prints warning messages with yellow color
func PrintWarning(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s]%s %s%s%s\n",
		Gray, timestamp, Reset,
		BrightYellow, fmt.Sprintf(format, args...), Reset)
}

// PrintError prints error messages with red color
func PrintError(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s]%s %s%s%s\n",
		Gray, timestamp, Reset,
		BrightRed, fmt.Sprintf(format, args...), Reset)
}

// PrintDebug prints debug messages with gray color
func PrintDebug(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s] %s%s\n",
		Gray, timestamp, fmt.Sprintf(format, args...), Reset)
}

// PrintServer prints server-related messages
func PrintServer(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s]%s %s%s%s\n",
		Gray, timestamp, Reset,
		BrightBlue, fmt.Sprintf(format, args...), Reset)
}

// PrintConnection prints connection-related messages
func PrintConnection(format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("%s[%s]%s %s%s%s\n",
		Gray, timestamp, Reset,
		White, fmt.Sprintf(format, args...), Reset)
}

// PrintSubHeader prints sub-header messages
func PrintSubHeader(format string, args ...interface{}) {
	fmt.Printf("%s%s> %s%s\n", BrightCyan, Bold, fmt.Sprintf(format, args...), Reset)
}

// PrintBanner prints the application banner
func PrintBanner() {
	fmt.Printf("%s%sAUTO360 Console Server%s %s- store operations, catalog & agent intake%s\n",
		BrightCyan, Bold, Reset, Gray, Reset)
}
