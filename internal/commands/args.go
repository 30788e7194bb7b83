package commands

// parsed holds the result of the two-pass argument scan.
type parsed struct {
	flags       map[byte]bool
	positionals []string
}

// parseArgs splits args into single-character flags and positionals before
// any business logic runs. Unknown flag characters are silently tolerated to
// match legacy shell behavior; that tolerance lives here and nowhere else.
func parseArgs(args []string) parsed {
	p := parsed{flags: make(map[byte]bool)}
	for _, arg := range args {
		if len(arg) > 1 && arg[0] == '-' {
			for i := 1; i < len(arg); i++ {
				p.flags[arg[i]] = true
			}
			continue
		}
		p.positionals = append(p.positionals, arg)
	}
	return p
}
