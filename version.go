package main

// Version is stamped by the release workflow; source builds report dev.
var Version = "0.0.0-dev"
