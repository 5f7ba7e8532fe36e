package mail

type CredentialEmailData struct {
	Name     string
	Email    string
	Password string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
