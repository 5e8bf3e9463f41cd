// Package config loads the breeds configuration file.
//
// # Discovery
//
// Load reads the path it is given, or ~/.config/breeds/config.toml when the
// path is blank. A missing file is not an error: Default is returned so the
// program works without any setup.
//
// # Fields
//
//	api_base_url     = "https://dog.ceo/api"
//	random_count     = 10
//	request_timeout  = "10s"
//	data_dir         = "~/.local/share/breeds"
//	download_dir     = "~/Downloads/breeds"
//	log_file         = "~/.local/share/breeds/breeds.log"
//	download_workers = 4
//
//	[favorites]
//	recover_corrupt = false
//
// Every field is optional. Blank strings and zero numbers fall back to the
// defaults above. Paths go through tilde expansion and are made absolute.
// log_file follows data_dir unless it is set explicitly.
//
// The favorites list lives in <data_dir>/likedBreeds.json. When
// recover_corrupt is true an unreadable list is treated as empty instead of
// stopping startup; the file is left alone until the next like or unlike.
//
// # Errors
//
// Load fails on unreadable files, invalid TOML, a request_timeout that is not
// a positive Go duration, and a negative random_count.
package config
