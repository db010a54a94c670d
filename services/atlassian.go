package services

import (
	"os"
	"sync"

	confluence "github.com/ctreminiom/go-atlassian/confluence/v2"
	"github.com/ctreminiom/go-atlassian/jira/agile"
	jira "github.com/ctreminiom/go-atlassian/jira/v3"
	"github.com/pkg/errors"
)

// JiraClient returns a singleton Jira Cloud v3 client. The v3 REST API
// returns rich text fields as ADF documents.
var JiraClient = sync.OnceValue(func() *jira.Client {
	host, mail, token := atlassianCredentials()

	client, err := jira.New(nil, host)
	if err != nil {
		panic(errors.Wrap(err, "failed to create Jira client"))
	}
	client.Auth.SetBasicAuth(mail, token)

	return client
})

// AgileClient returns a singleton Jira Agile client for board and sprint
// operations.
var AgileClient = sync.OnceValue(func() *agile.Client {
	host, mail, token := atlassianCredentials()

	client, err := agile.New(nil, host)
	if err != nil {
		panic(errors.Wrap(err, "failed to create Agile client"))
	}
	client.Auth.SetBasicAuth(mail, token)

	return client
})

// ConfluenceClient returns a singleton Confluence v2 client.
var ConfluenceClient = sync.OnceValue(func() *confluence.Client {
	host, mail, token := atlassianCredentials()

	client, err := confluence.New(nil, host)
	if err != nil {
		panic(errors.Wrap(err, "failed to create Confluence client"))
	}
	client.Auth.SetBasicAuth(mail, token)

	return client
})

func atlassianCredentials() (host, mail, token string) {
	host = os.Getenv("ATLASSIAN_HOST")
	mail = os.Getenv("ATLASSIAN_EMAIL")
	token = os.Getenv("ATLASSIAN_TOKEN")

	if host == "" || mail == "" || token == "" {
		panic("ATLASSIAN_HOST, ATLASSIAN_EMAIL and ATLASSIAN_TOKEN must be set, please set them in MCP Config")
	}
	return host, mail, token
}
