package commands

const (
	_etc = "/usr/local/etc/uhppoted"

	DEFAULT_CONFIG      = _etc + "/sheetdb/sheetdb.toml"
	DEFAULT_CREDENTIALS = _etc + "/sheetdb/.google/credentials.json"
)
