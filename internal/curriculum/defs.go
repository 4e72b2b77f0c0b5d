package curriculum

// moduleDef declares a module and the exact category labels it claims.
// Definitions are processed in order and claiming is exclusive, so when
// two definitions list the same category the earlier one wins. That
// tie-break is deliberate.
type moduleDef struct {
	ID               string
	Title            string
	Description      string
	Icon             string
	Color            string
	CategoryPatterns []string
}

var moduleDefs = []moduleDef{
	{
		ID:          "python-fundamentals",
		Title:       "Python Fundamentals",
		Description: "Core Python concepts, libraries, and command-line tools",
		Icon:        "🐍",
		Color:       "blue",
		CategoryPatterns: []string{
			"Python Concepts",
			"Python Commands",
			"Python Libraries",
			"Data Processing Python",
		},
	},
	{
		ID:          "javascript-deep-dive",
		Title:       "JavaScript Deep Dive",
		Description: "From basics to advanced JS patterns and data formats",
		Icon:        "⚡",
		Color:       "yellow",
		CategoryPatterns: []string{
			"JavaScript Concepts",
			"Javascript Concepts",
			"Json Concepts",
		},
	},
	{
		ID:          "typescript-modern",
		Title:       "TypeScript & Modern Runtimes",
		Description: "Type safety, Deno, and modern JavaScript tooling",
		Icon:        "🛡️",
		Color:       "blue",
		CategoryPatterns: []string{
			"TypeScript Concepts",
			"Deno Concepts",
			"Languages",
		},
	},
	{
		ID:          "web-html-css",
		Title:       "HTML & CSS",
		Description: "Structure, styling, and visual design for the web",
		Icon:        "🎨",
		Color:       "pink",
		CategoryPatterns: []string{
			"HTML Concepts",
			"CSS Concepts",
			"Html5 Concepts",
			"Css Concepts",
			"HTML CSS Concepts",
			"Styling",
			"Theming",
			"UI Component Libraries",
		},
	},
	{
		ID:          "react-nextjs",
		Title:       "React & Next.js",
		Description: "Component-based UI, server rendering, and mobile with Capacitor",
		Icon:        "⚛️",
		Color:       "cyan",
		CategoryPatterns: []string{
			"React Concepts",
			"Next.js Concepts",
			"Capacitor Concepts",
			"Frameworks",
		},
	},
	{
		ID:          "bash-cli",
		Title:       "Bash & Command Line",
		Description: "Shell scripting, file management, and system commands",
		Icon:        "💻",
		Color:       "green",
		CategoryPatterns: []string{
			"Bash / Shell Concepts",
			"Bash Commands: File And Navigation",
			"Bash Commands: Networking",
			"Bash Commands: Package Management",
			"Bash Commands: Process And Service",
			"Bash Commands: Ssh",
		},
	},
	{
		ID:          "git-github",
		Title:       "Git & GitHub",
		Description: "Version control, collaboration, CI/CD, and automation",
		Icon:        "🔀",
		Color:       "orange",
		CategoryPatterns: []string{
			"Bash Commands: Git",
			"Github Concepts",
			"Git And Github",
			"Git Commands",
			"GitHub Concepts",
			"Github Actions",
			"GitHub Actions Workflows",
			"npm Commands",
		},
	},
	{
		ID:          "sql-databases",
		Title:       "SQL & Databases",
		Description: "Relational databases, queries, schema design, and administration",
		Icon:        "🗄️",
		Color:       "purple",
		CategoryPatterns: []string{
			"SQL Concepts",
			"Sql Concepts",
			"Database Tables",
			"Database Administration",
			"PostgreSQL Concepts",
			"Database Patterns",
			"Database Clients",
		},
	},
	{
		ID:          "networking-http",
		Title:       "Networking & HTTP",
		Description: "Protocols, REST APIs, and web security fundamentals",
		Icon:        "🌐",
		Color:       "teal",
		CategoryPatterns: []string{
			"Networking",
			"Http And Rest",
			"Security",
		},
	},
	{
		ID:          "cloud-infra",
		Title:       "Cloud & Infrastructure",
		Description: "Cloud platforms, CDNs, serverless, and deployment",
		Icon:        "☁️",
		Color:       "sky",
		CategoryPatterns: []string{
			"Vercel Concepts",
			"Cloudflare Concepts",
			"Cloudflare Commands",
			"Infrastructure & Services",
			"Platforms & Infrastructure",
			"Serverless",
			"Cloud Storage",
		},
	},
	{
		ID:          "linux-admin",
		Title:       "Linux Server Admin",
		Description: "Server management, processes, and system configuration",
		Icon:        "🐧",
		Color:       "slate",
		CategoryPatterns: []string{
			"Linux Server Admin",
		},
	},
	{
		ID:          "backend-services",
		Title:       "Backend Services",
		Description: "Backend-as-a-service, auth, configuration, and external APIs",
		Icon:        "🔌",
		Color:       "emerald",
		CategoryPatterns: []string{
			"Supabase Concepts",
			"Authentication & Security",
			"Environment Variables",
			"External Services",
			"External APIs",
			"Configuration Files",
		},
	},
	{
		ID:          "software-engineering",
		Title:       "Software Engineering",
		Description: "Design patterns, architecture, and engineering best practices",
		Icon:        "🏗️",
		Color:       "amber",
		CategoryPatterns: []string{
			"Software Engineering",
			"Design Patterns",
			"Architectural Patterns",
			"Domain Concepts",
		},
	},
	{
		ID:          "bots-automation",
		Title:       "Bots & Automation",
		Description: "Bots, YAML config, dev tools, and automation",
		Icon:        "🤖",
		Color:       "rose",
		CategoryPatterns: []string{
			"Telegram Bot Api API",
			"Telegram Bot Commands",
			"Yaml Concepts",
			"Dev Tools",
		},
	},
	{
		ID:          "lessons-learned",
		Title:       "Lessons & Best Practices",
		Description: "Hard-won lessons from real project experience",
		Icon:        "💡",
		Color:       "yellow",
		CategoryPatterns: []string{
			"Lessons Learned",
		},
	},
}
