package render

// Banner is the ASCII-art logo shown in the version output and,
// optionally, above a profile summary.
const Banner = `  ____ _ _   _   _       _     _____    _       _
 / ___(_) |_| | | |_   _| |__ |  ___|__| |_ ___| |__
| |  _| | __| |_| | | | | '_ \| |_ / _ \ __/ __| '_ \
| |_| | | |_|  _  | |_| | |_) |  _|  __/ || (__| | | |
 \____|_|\__|_| |_|\__,_|_.__/|_|  \___|\__\___|_| |_|
`

const usageText = `USAGE:
    githubfetch [OPTIONS] <USERNAME>

OPTIONS:
    -h, --help       Print help
    -V, --version    Print version

ENVIRONMENT:
    GITHUB_URL                     API base URL (default: https://api.github.com)
    GITHUBFETCH_TIMEOUT_SECONDS    HTTP timeout in seconds (default: none)
    GITHUBFETCH_NO_STARS           Skip the repository star total
    GITHUBFETCH_BANNER             Print the logo above the profile
    GITHUBFETCH_DEBUG              Log requests to stderr
    NO_COLOR                       Disable colored output
`

const licenseText = `Copyright (C) 2025 Desyatkov Sergey
This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version`
