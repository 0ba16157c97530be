package commands

const (
	_etc = `C:\ProgramData\uhppoted`

	DEFAULT_CONFIG      = _etc + `\sheetdb\sheetdb.toml`
	DEFAULT_CREDENTIALS = _etc + `\sheetdb\.google\credentials.json`
)
