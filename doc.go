// Package jars extracts the entries of a Java archive into memory.
//
// [Extract] reads a jar (or any zip archive) and returns a [Jar] that maps
// normalized entry paths to their uncompressed content. Which entries are
// kept is decided by an [Option], built with [Builder] from path prefixes
// ("targets") and file extensions. [Walk] visits the same entries one by one
// instead of collecting them.
//
// Besides plain jars, 7zip and rar archives are read, and archives wrapped in
// a compressed stream such as rt.jar.gz are unwrapped first. Runtime
// behavior, like limits, concurrency, logging and the telemetry hook, is set
// with [ConfigOption] values, see [NewConfig].
package jars
