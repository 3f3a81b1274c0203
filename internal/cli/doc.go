// Package cli provides command-line interface setup and configuration
// for the hanyu application. It handles flag parsing, command
// creation, configuration management using cobra and viper, and the
// structured logger used for warnings.
package cli
