package config

import "time"

// Base application details
const AppName = "stylo"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "stylo.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// History defaults: faithful append-always log, no bound, no coalescing.
const DefaultHistoryPolicy = "append"
const DefaultMaxHistory = 0
const DefaultCoalesceWindow = time.Duration(0)

const SystemClipboard = true
const DefaultThemeName = "DevComfort Dark"
