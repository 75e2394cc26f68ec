// Package content holds the static copy shown by the portfolio: the intro
// banners, the header title variants, and the ordered (label, body) section
// table backing the menu.
package content

import "strings"

// Section pairs a menu label with the text block shown when it is selected.
type Section struct {
	Label string
	Body  string
}

// Lines splits the section body into display lines.
func (s Section) Lines() []string {
	return strings.Split(s.Body, "\n")
}

// Sections returns the fixed menu table. Order is part of the UI contract:
// the selected index addresses both the label column and the body shown in
// the content panel.
func Sections() []Section {
	return sections
}

// Titles returns the header title cycle. The first entry is the default;
// the rest are reachable through the title key.
func Titles() []string {
	return titles
}

var titles = []string{
	"T A R B E T U",
	"tarbetu.dev",
	"~/tarbetu",
}

var sections = []Section{
	{
		Label: "About",
		Body: `Hi, I am Tarbetu.
I write software for terminals because a good terminal never goes out
of fashion. Most of my work lives somewhere between systems plumbing
and text interfaces.
This page is itself a terminal program, so you are already looking at
a work sample.`,
	},
	{
		Label: "Portfolio",
		Body: `Selected projects, newest first.

lycian — a transliteration toolkit for Anatolian scripts.
https://github.com/tarbetu/lycian

termfolio — the program rendering this very page.
https://github.com/tarbetu/portfolio

quill — a minimal note-taking daemon with a tiny wire protocol.
https://github.com/tarbetu/quill`,
	},
	{
		Label: "Whoami",
		Body: `Reader, writer, flaneur of dead languages.
Daytime: software. Nighttime: grammars of languages nobody speaks.
I keep a shelf of books about scripts that lost their last reader
centuries ago, and I am slowly adding to it.`,
	},
	{
		Label: "Lycian Project",
		Body: `An attempt to make the Lycian corpus machine-readable.
The project covers transliteration tables, a small lexicon, and
tooling to render inscriptions in both directions.
https://github.com/tarbetu/lycian
Contributions and corrections are welcome, especially from people
who can read the stones better than I can.`,
	},
	{
		Label: "Interests",
		Body: `Ancient Anatolian languages and their writing systems.
Terminal user interfaces and the culture around them.
Long walks, longer books, and coffee brewed too strong.`,
	},
	{
		Label: "Some music",
		Body: `A rotating list of what keeps the cursor blinking.

Anathema — Weather Systems
Ahmet Aslan — Na-Mükemmel
Dead Can Dance — Into the Labyrinth`,
	},
	{
		Label: "Echoes from my mania",
		Body: `Fragments of writing, published irregularly.
Essays on dead scripts, terminals, and the odd manifesto.
https://tarbetu.dev/echoes`,
	},
	{
		Label: "Kara Tilki Hiyerarşisi",
		Body: `Kara Tilki Hiyerarşisi is a long-running fiction project.
A black fox, a bureaucracy of shadows, and a narrator who cannot be
trusted with either.
Drafts circulate among a small circle; ask and you may receive.`,
	},
	{
		Label: "Technical Details",
		Body: `This page is a terminal program compiled for your browser.
The UI is a single state machine: an intro sequence on a timer, then
the menu you are using right now.
Source, including the rendering code:
https://github.com/tarbetu/portfolio`,
	},
}

// Banner1 through Banner3 are the intro name plates, shown in sequence with
// a bright/dim pulse. PressAnyKey closes the sequence.
const Banner1 = ` _____  _    ____  ____  _____ _____ _   _
|_   _|/ \  |  _ \| __ )| ____|_   _| | | |
  | | / _ \ | |_) |  _ \|  _|   | | | | | |
  | |/ ___ \|  _ <| |_) | |___  | | | |_| |
  |_/_/   \_\_| \_\____/|_____| |_|  \___/`

const Banner2 = `████████╗ █████╗ ██████╗ ██████╗ ███████╗████████╗██╗   ██╗
╚══██╔══╝██╔══██╗██╔══██╗██╔══██╗██╔════╝╚══██╔══╝██║   ██║
   ██║   ███████║██████╔╝██████╔╝█████╗     ██║   ██║   ██║
   ██║   ██╔══██║██╔══██╗██╔══██╗██╔══╝     ██║   ██║   ██║
   ██║   ██║  ██║██║  ██║██████╔╝███████╗   ██║   ╚██████╔╝
   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝ ╚══════╝   ╚═╝    ╚═════╝`

const Banner3 = `  ______           __         __
 /_  __/___ ______/ /_  ___  / /___  __
  / / / __ ` + "`" + `/ ___/ __ \/ _ \/ __/ / / /
 / / / /_/ / /  / /_/ /  __/ /_/ /_/ /
/_/  \__,_/_/  /_.___/\___/\__/\__,_/`

const PressAnyKey = `┌─────────────────────────┐
│    press any key ...    │
└─────────────────────────┘`
