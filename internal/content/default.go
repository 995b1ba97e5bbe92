package content

import (
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/profile"
	"github.com/khoahotran/portfolio/internal/domain/project"
)

const devicon = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/"

func link(s string) *string { return &s }

// Default returns the page content. Each call builds a fresh copy.
func Default() *portfolio.Content {
	return &portfolio.Content{
		Profile: profile.Profile{
			Name:  "Deepa Maria",
			Title: "Full Stack Developer",
			Bio: "I build elegant solutions to complex problems and love transforming ideas into interactive digital experiences " +
				"using modern technologies. I specialize in crafting modern web interfaces with engaging micro-interactions, " +
				"focusing on clean code, intuitive user experiences, and continuous learning. Currently based in Munich, " +
				"I am passionate about creating products that delight users and make a real impact.",
			GitHub:   "https://github.com/deepamaria",
			LinkedIn: "https://linkedin.com/in/deepa-maria/",
			Email:    "deepamaria89@gmail.com",
			Image:    "/assets/photo.png",
		},
		Projects: []project.Project{
			{
				ID:    1,
				Title: "Food-Hub",
				Description: "A web application built with React, Node.js and TailwindCSS. This is a food listing website " +
					"showcasing the available foods of different cuisines with filter option. Showcases categorization " +
					"and responsive design.",
				Tech:   []string{"React", "Node.js", "TailwindCSS", "WebSocket"},
				GitHub: link("https://github.com/deepamaria1/food_hub"),
				Demo:   link("https://goodfoodhub.netlify.app/"),
				Accent: project.Gradient{From: "blue-500", To: "cyan-500"},
			},
			{
				ID:    2,
				Title: "Scheduler4U",
				Description: "A full-stack web application built with React and Node.js. Features real-time data " +
					"synchronization and responsive design. Here the people can schedule their Daily activities and " +
					"Appointments into Calendar.",
				Tech:   []string{"React.js", "Node.js", "TailwindCSS", "MySQL", "CI-CD"},
				GitHub: link("https://github.com/deepamaria1/Scheduler4U"),
				Demo:   link("https://scheduler-4u.netlify.app/"),
				Accent: project.Gradient{From: "purple-500", To: "pink-500"},
			},
			{
				ID:    3,
				Title: "Library Manager App",
				Description: "A full-stack web application with React, Node.js, TailwindCSS and PostgresSQL featuring book " +
					"management system. This allows user to make a Reading List from a book Resource and to store " +
					"their Read books.",
				Tech:   []string{"React", "TypeScript", "TailwindCSS", "PostgreSQL"},
				Accent: project.Gradient{From: "green-500", To: "emerald-500"},
			},
		},
		Skills: []portfolio.SkillCategory{
			{Name: "Frontend", Icon: "code", Items: []string{"React.js", "React Native", "Next.js", "TypeScript", "Vanilla JavaScript", "Tailwind CSS"}},
			{Name: "Backend", Icon: "database", Items: []string{"Node.js", "Python", "PostgreSQL", "MySQL"}},
			{Name: "Tools", Icon: "palette", Items: []string{"Git", "Docker", "CI/CD", "AWS", "Microsoft Azure"}},
		},
		NavItems: []portfolio.NavItem{
			{Name: "About me", Href: "#about"},
			{Name: "Projects", Href: "#projects"},
			{Name: "Skills", Href: "#skills"},
			{Name: "Contact", Href: "#contact"},
		},
		TechIcons: []portfolio.TechIcon{
			{Name: "React", IconURL: devicon + "react/react-original.svg", HoverColor: "cyan-400"},
			{Name: "JavaScript", IconURL: devicon + "javascript/javascript-original.svg", HoverColor: "yellow-400"},
			{Name: "NextJS", IconURL: devicon + "nextjs/nextjs-original.svg", HoverColor: "white"},
			{Name: "TypeScript", IconURL: devicon + "typescript/typescript-original.svg", HoverColor: "blue-400"},
			{Name: "Node.js", IconURL: devicon + "nodejs/nodejs-original.svg", HoverColor: "green-400"},
			{Name: "Python", IconURL: devicon + "python/python-original.svg", HoverColor: "blue-400"},
			{Name: "Tailwind", IconURL: devicon + "tailwindcss/tailwindcss-original.svg", HoverColor: "cyan-400"},
			{Name: "PostgreSQL", IconURL: devicon + "postgresql/postgresql-original.svg", HoverColor: "blue-400"},
			{Name: "MySQL", IconURL: devicon + "mysql/mysql-original.svg", HoverColor: "cyan-600"},
			{Name: "Figma", IconURL: devicon + "figma/figma-original.svg", HoverColor: "purple-400"},
			{Name: "Git", IconURL: devicon + "git/git-original.svg", HoverColor: "orange-400"},
		},
		Contact: portfolio.Contact{
			Heading: "Let's Build Something Together",
			Lines: []string{
				"I'm always open to discussing new projects, creative ideas, or opportunities.",
				"Want to Collaborate or Connect?",
			},
			CTA: "Get in Touch",
		},
		ResumePath: "/assets/resume.pdf",
		Year:       2024,
	}
}
