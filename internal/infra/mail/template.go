package mail

// credentialTemplate is the registration-success notification sent to
// newly created accounts with their login credentials.
const credentialTemplate = `<!DOCTYPE html>
<html>

<head>
    <meta charset="UTF-8">
    <title>Registration Successful</title>
    <style>
        body {
            background-color: #ffffff;
            font-family: Arial, sans-serif;
            font-size: 16px;
            line-height: 1.4;
            color: #333333;
            margin: 0;
            padding: 0;
        }

        .container {
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
            text-align: center;
        }

        .message {
            font-size: 18px;
            font-weight: bold;
            margin-bottom: 20px;
        }

        .body {
            font-size: 16px;
            margin-bottom: 20px;
        }

        .highlight {
            font-weight: bold;
        }
    </style>
</head>

<body>
    <div class="container">
        <div class="message">Welcome to the Lead Management System</div>
        <div class="body">
            <p>Hi {{.Name}},</p>
            <p>Your account has been created. Use the credentials below to sign in:</p>
            <p>Email: <span class="highlight">{{.Email}}</span></p>
            <p>Password: <span class="highlight">{{.Password}}</span></p>
            <p>Please change your password after your first login.</p>
        </div>
    </div>
</body>

</html>`
