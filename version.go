// Package patterncraft scaffolds KivyMD GUI application projects with a
// Model-View-Controller layout.
package patterncraft

// Version is the patterncraft release version
const Version = "0.4.0"
