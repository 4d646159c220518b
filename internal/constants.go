package internal

const ApplicationName = "vercompat"
