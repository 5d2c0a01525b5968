package seeddata

// SeedAlternative is one curated directory entry. Categories are not
// listed here: the seeder derives them with the keyword matcher from
// the descriptive text.
type SeedAlternative struct {
	Slug          string
	Name          string
	ShortDesc     string
	LongDesc      string
	RepoURL       string
	Homepage      string
	License       string
	AlternativeTo []string
	TechStacks    []string
}

// Alternatives is the curated initial batch. Descriptions double as
// matcher input, so they name the product being replaced.
var Alternatives = []SeedAlternative{
	{
		Slug:          "focalboard",
		Name:          "Focalboard",
		ShortDesc:     "Feature-rich kanban board alternative to Trello",
		LongDesc:      "Focalboard is an open source, self-hosted project management tool with kanban boards, task tracking, and notes for individuals and teams.",
		RepoURL:       "https://github.com/mattermost/focalboard",
		Homepage:      "https://www.focalboard.com",
		License:       "MIT",
		AlternativeTo: []string{"trello"},
		TechStacks:    []string{"golang", "typescript"},
	},
	{
		Slug:          "taiga",
		Name:          "Taiga",
		ShortDesc:     "Agile project management platform replacing Jira",
		LongDesc:      "Taiga offers backlogs, sprints, kanban, and issue tracking for agile teams that want an open alternative to Jira.",
		RepoURL:       "https://github.com/taigaio/taiga",
		Homepage:      "https://taiga.io",
		License:       "AGPL-3.0",
		AlternativeTo: []string{"jira", "trello"},
		TechStacks:    []string{"python", "vue"},
	},
	{
		Slug:          "outline",
		Name:          "Outline",
		ShortDesc:     "Team knowledge base and wiki, an alternative to Notion and Confluence",
		LongDesc:      "Outline is a fast, collaborative knowledge base and note-taking tool your team can self-host, replacing Notion or Confluence.",
		RepoURL:       "https://github.com/outline/outline",
		Homepage:      "https://www.getoutline.com",
		License:       "BSL-1.1",
		AlternativeTo: []string{"notion", "confluence"},
		TechStacks:    []string{"typescript", "react"},
	},
	{
		Slug:          "mattermost",
		Name:          "Mattermost",
		ShortDesc:     "Self-hosted team chat alternative to Slack",
		LongDesc:      "Mattermost delivers secure team chat, channels, and messaging for organizations that cannot put conversations in Slack.",
		RepoURL:       "https://github.com/mattermost/mattermost",
		Homepage:      "https://mattermost.com",
		License:       "AGPL-3.0",
		AlternativeTo: []string{"slack"},
		TechStacks:    []string{"golang", "react"},
	},
	{
		Slug:          "jitsi-meet",
		Name:          "Jitsi Meet",
		ShortDesc:     "Open video conferencing in place of Zoom",
		LongDesc:      "Jitsi Meet provides encrypted video conferencing and video calls you can run on your own infrastructure instead of Zoom.",
		RepoURL:       "https://github.com/jitsi/jitsi-meet",
		Homepage:      "https://meet.jit.si",
		License:       "Apache-2.0",
		AlternativeTo: []string{"zoom"},
		TechStacks:    []string{"javascript", "java"},
	},
	{
		Slug:          "listmonk",
		Name:          "listmonk",
		ShortDesc:     "Newsletter and email marketing manager replacing Mailchimp",
		LongDesc:      "listmonk is a standalone, self-hosted newsletter and mailing list manager, an email marketing alternative to Mailchimp.",
		RepoURL:       "https://github.com/knadh/listmonk",
		Homepage:      "https://listmonk.app",
		License:       "AGPL-3.0",
		AlternativeTo: []string{"mailchimp"},
		TechStacks:    []string{"golang", "vue"},
	},
	{
		Slug:          "espocrm",
		Name:          "EspoCRM",
		ShortDesc:     "Web CRM alternative to Salesforce and HubSpot",
		LongDesc:      "EspoCRM is a CRM for managing leads, accounts, and sales pipelines without handing customer data to Salesforce or HubSpot.",
		RepoURL:       "https://github.com/espocrm/espocrm",
		Homepage:      "https://www.espocrm.com",
		License:       "AGPL-3.0",
		AlternativeTo: []string{"salesforce", "hubspot"},
		TechStacks:    []string{"php", "javascript"},
	},
	{
		Slug:          "chatwoot",
		Name:          "Chatwoot",
		ShortDesc:     "Customer support platform replacing Zendesk and Intercom",
		LongDesc:      "Chatwoot gives support teams a shared inbox, live chat, and help desk workflows as an alternative to Zendesk or Intercom.",
		RepoURL:       "https://github.com/chatwoot/chatwoot",
		Homepage:      "https://www.chatwoot.com",
		License:       "MIT",
		AlternativeTo: []string{"zendesk", "intercom"},
		TechStacks:    []string{"ruby", "vue"},
	},
	{
		Slug:          "medusa",
		Name:          "Medusa",
		ShortDesc:     "Composable e-commerce engine replacing Shopify",
		LongDesc:      "Medusa is a modular commerce platform for building online stores with full control, a developer-first alternative to Shopify.",
		RepoURL:       "https://github.com/medusajs/medusa",
		Homepage:      "https://medusajs.com",
		License:       "MIT",
		AlternativeTo: []string{"shopify"},
		TechStacks:    []string{"typescript", "react"},
	},
	{
		Slug:          "penpot",
		Name:          "Penpot",
		ShortDesc:     "Design and prototyping tool, the open alternative to Figma",
		LongDesc:      "Penpot is a design tool for UI and prototyping that teams can self-host instead of depending on Figma.",
		RepoURL:       "https://github.com/penpot/penpot",
		Homepage:      "https://penpot.app",
		License:       "MPL-2.0",
		AlternativeTo: []string{"figma"},
		TechStacks:    []string{"typescript"},
	},
	{
		Slug:          "gimp",
		Name:          "GIMP",
		ShortDesc:     "Image editor replacing Adobe Photoshop",
		LongDesc:      "GIMP is a free image editor for photo editing, retouching, and composition, the long-standing alternative to Photoshop.",
		RepoURL:       "https://gitlab.gnome.org/GNOME/gimp",
		Homepage:      "https://www.gimp.org",
		License:       "GPL-3.0",
		AlternativeTo: []string{"photoshop"},
		TechStacks:    []string{"cpp"},
	},
	{
		Slug:          "navidrome",
		Name:          "Navidrome",
		ShortDesc:     "Personal music streaming server in place of Spotify",
		LongDesc:      "Navidrome streams your own music collection from your own server, a music streaming alternative to Spotify for your library.",
		RepoURL:       "https://github.com/navidrome/navidrome",
		Homepage:      "https://www.navidrome.org",
		License:       "GPL-3.0",
		AlternativeTo: []string{"spotify"},
		TechStacks:    []string{"golang", "react"},
	},
	{
		Slug:          "nextcloud",
		Name:          "Nextcloud",
		ShortDesc:     "File sync and sharing suite replacing Dropbox and Google Drive",
		LongDesc:      "Nextcloud provides file sync, file sharing, and cloud storage under your control, an alternative to Dropbox and Google Drive.",
		RepoURL:       "https://github.com/nextcloud/server",
		Homepage:      "https://nextcloud.com",
		License:       "AGPL-3.0",
		AlternativeTo: []string{"dropbox", "google-drive"},
		TechStacks:    []string{"php", "vue"},
	},
	{
		Slug:          "immich",
		Name:          "Immich",
		ShortDesc:     "Photo and video backup alternative to Google Photos",
		LongDesc:      "Immich is a self-hosted photo management solution with automatic backup, albums, and search, replacing Google Photos.",
		RepoURL:       "https://github.com/immich-app/immich",
		Homepage:      "https://immich.app",
		License:       "AGPL-3.0",
		AlternativeTo: []string{"google-photos"},
		TechStacks:    []string{"typescript", "svelte"},
	},
	{
		Slug:          "vaultwarden",
		Name:          "Vaultwarden",
		ShortDesc:     "Password manager server replacing LastPass and 1Password",
		LongDesc:      "Vaultwarden is a lightweight, self-hosted password manager server compatible with Bitwarden clients, an alternative to LastPass and 1Password.",
		RepoURL:       "https://github.com/dani-garcia/vaultwarden",
		Homepage:      "",
		License:       "AGPL-3.0",
		AlternativeTo: []string{"lastpass", "1password"},
		TechStacks:    []string{"rust"},
	},
	{
		Slug:          "gitea",
		Name:          "Gitea",
		ShortDesc:     "Lightweight code hosting replacing GitHub",
		LongDesc:      "Gitea is a painless self-hosted Git service with code hosting, pull requests, and issue tracking, an alternative to GitHub.",
		RepoURL:       "https://github.com/go-gitea/gitea",
		Homepage:      "https://about.gitea.com",
		License:       "MIT",
		AlternativeTo: []string{"github"},
		TechStacks:    []string{"golang"},
	},
	{
		Slug:          "woodpecker",
		Name:          "Woodpecker CI",
		ShortDesc:     "Container-native continuous integration replacing Jenkins",
		LongDesc:      "Woodpecker is a simple continuous integration engine running pipelines in containers, an alternative to Jenkins.",
		RepoURL:       "https://github.com/woodpecker-ci/woodpecker",
		Homepage:      "https://woodpecker-ci.org",
		License:       "Apache-2.0",
		AlternativeTo: []string{"jenkins"},
		TechStacks:    []string{"golang", "vue"},
	},
	{
		Slug:          "signoz",
		Name:          "SigNoz",
		ShortDesc:     "Observability platform replacing Datadog",
		LongDesc:      "SigNoz bundles metrics, traces, and logs into one monitoring and observability backend, an open alternative to Datadog.",
		RepoURL:       "https://github.com/SigNoz/signoz",
		Homepage:      "https://signoz.io",
		License:       "Apache-2.0",
		AlternativeTo: []string{"datadog"},
		TechStacks:    []string{"golang", "typescript"},
	},
	{
		Slug:          "supabase",
		Name:          "Supabase",
		ShortDesc:     "Backend as a service replacing Firebase",
		LongDesc:      "Supabase gives you a Postgres database, auth, and realtime APIs, a backend as a service alternative to Firebase.",
		RepoURL:       "https://github.com/supabase/supabase",
		Homepage:      "https://supabase.com",
		License:       "Apache-2.0",
		AlternativeTo: []string{"firebase"},
		TechStacks:    []string{"typescript", "postgresql"},
	},
	{
		Slug:          "nocodb",
		Name:          "NocoDB",
		ShortDesc:     "Smart spreadsheet over any database, an Airtable alternative",
		LongDesc:      "NocoDB turns databases into collaborative spreadsheet workspaces, replacing Airtable for teams that own their data.",
		RepoURL:       "https://github.com/nocodb/nocodb",
		Homepage:      "https://nocodb.com",
		License:       "AGPL-3.0",
		AlternativeTo: []string{"airtable"},
		TechStacks:    []string{"typescript", "vue"},
	},
	{
		Slug:          "n8n",
		Name:          "n8n",
		ShortDesc:     "Workflow automation tool replacing Zapier",
		LongDesc:      "n8n is a fair-code workflow automation platform with hundreds of integrations, an alternative to Zapier you can self-host.",
		RepoURL:       "https://github.com/n8n-io/n8n",
		Homepage:      "https://n8n.io",
		License:       "Sustainable Use License",
		AlternativeTo: []string{"zapier"},
		TechStacks:    []string{"typescript"},
	},
	{
		Slug:          "metabase",
		Name:          "Metabase",
		ShortDesc:     "Business intelligence and dashboards replacing Tableau",
		LongDesc:      "Metabase lets anyone ask questions of data with dashboards and data visualization, a business intelligence alternative to Tableau.",
		RepoURL:       "https://github.com/metabase/metabase",
		Homepage:      "https://www.metabase.com",
		License:       "AGPL-3.0",
		AlternativeTo: []string{"tableau"},
		TechStacks:    []string{"java"},
	},
	{
		Slug:          "plausible",
		Name:          "Plausible Analytics",
		ShortDesc:     "Privacy-friendly web analytics replacing Google Analytics",
		LongDesc:      "Plausible is lightweight, cookie-free web analytics, a privacy-first alternative to Google Analytics.",
		RepoURL:       "https://github.com/plausible/analytics",
		Homepage:      "https://plausible.io",
		License:       "AGPL-3.0",
		AlternativeTo: []string{"google-analytics"},
		TechStacks:    []string{"elixir"},
	},
	{
		Slug:          "ghost",
		Name:          "Ghost",
		ShortDesc:     "Publishing platform for blogging, replacing Medium and Substack",
		LongDesc:      "Ghost is a powerful publishing platform for newsletters and blogging, an independent alternative to Medium.",
		RepoURL:       "https://github.com/TryGhost/Ghost",
		Homepage:      "https://ghost.org",
		License:       "MIT",
		AlternativeTo: []string{"medium"},
		TechStacks:    []string{"javascript"},
	},
	{
		Slug:          "docuseal",
		Name:          "DocuSeal",
		ShortDesc:     "Document signing and e-signature flows replacing DocuSign",
		LongDesc:      "DocuSeal provides document filling and electronic signature workflows, a self-hosted alternative to DocuSign.",
		RepoURL:       "https://github.com/docusealco/docuseal",
		Homepage:      "https://www.docuseal.com",
		License:       "AGPL-3.0",
		AlternativeTo: []string{"docusign"},
		TechStacks:    []string{"ruby", "vue"},
	},
	{
		Slug:          "cal-com",
		Name:          "Cal.com",
		ShortDesc:     "Scheduling infrastructure replacing Calendly",
		LongDesc:      "Cal.com is open scheduling and appointment booking for individuals and teams, an alternative to Calendly.",
		RepoURL:       "https://github.com/calcom/cal.com",
		Homepage:      "https://cal.com",
		License:       "AGPL-3.0",
		AlternativeTo: []string{"calendly"},
		TechStacks:    []string{"typescript", "react"},
	},
	{
		Slug:          "formbricks",
		Name:          "Formbricks",
		ShortDesc:     "Surveys and form builder replacing Typeform",
		LongDesc:      "Formbricks is an open source survey and form builder for in-product research, an alternative to Typeform.",
		RepoURL:       "https://github.com/formbricks/formbricks",
		Homepage:      "https://formbricks.com",
		License:       "AGPL-3.0",
		AlternativeTo: []string{"typeform"},
		TechStacks:    []string{"typescript", "react"},
	},
	{
		Slug:          "wallabag",
		Name:          "wallabag",
		ShortDesc:     "Read-later and bookmark manager replacing Pocket",
		LongDesc:      "wallabag saves web pages to read later on your own server, a bookmark alternative to Pocket.",
		RepoURL:       "https://github.com/wallabag/wallabag",
		Homepage:      "https://wallabag.org",
		License:       "MIT",
		AlternativeTo: []string{"pocket"},
		TechStacks:    []string{"php"},
	},
	{
		Slug:          "freshrss",
		Name:          "FreshRSS",
		ShortDesc:     "Self-hosted RSS reader and news aggregator replacing Feedly",
		LongDesc:      "FreshRSS is a fast RSS feed reader and news aggregator you host yourself, an alternative to Feedly.",
		RepoURL:       "https://github.com/FreshRSS/FreshRSS",
		Homepage:      "https://freshrss.org",
		License:       "AGPL-3.0",
		AlternativeTo: []string{"feedly"},
		TechStacks:    []string{"php"},
	},
	{
		Slug:          "jellyfin",
		Name:          "Jellyfin",
		ShortDesc:     "Home media server replacing Plex",
		LongDesc:      "Jellyfin is a free media server and media library for movies, shows, and music, an alternative to Plex with no strings.",
		RepoURL:       "https://github.com/jellyfin/jellyfin",
		Homepage:      "https://jellyfin.org",
		License:       "GPL-2.0",
		AlternativeTo: []string{"plex"},
		TechStacks:    []string{"csharp"},
	},
	{
		Slug:          "joplin",
		Name:          "Joplin",
		ShortDesc:     "Note-taking app with sync, an Evernote alternative",
		LongDesc:      "Joplin is a note-taking and to-do application with end-to-end encrypted sync, replacing Evernote.",
		RepoURL:       "https://github.com/laurent22/joplin",
		Homepage:      "https://joplinapp.org",
		License:       "AGPL-3.0",
		AlternativeTo: []string{"evernote"},
		TechStacks:    []string{"typescript", "react"},
	},
	{
		Slug:          "hoppscotch",
		Name:          "Hoppscotch",
		ShortDesc:     "API client and testing workspace replacing Postman",
		LongDesc:      "Hoppscotch is a lightweight API client for building and api testing requests in the browser, an alternative to Postman.",
		RepoURL:       "https://github.com/hoppscotch/hoppscotch",
		Homepage:      "https://hoppscotch.io",
		License:       "MIT",
		AlternativeTo: []string{"postman"},
		TechStacks:    []string{"typescript", "vue"},
	},
}
