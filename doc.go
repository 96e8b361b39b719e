/*
Package cpfrsync mirrors a fixed Google Sheets range from a spreadsheet owned by an
organizational account into a spreadsheet owned by a personal account.

cpfr-sync can be used from the command line but is really intended to be run from a
cron job: each run reads the source range, clears the mirror range (best effort) and
rewrites it with the data just read, replacing the mirror's prior contents.

cpfr-sync supports the following commands:

  - sync, to mirror the source range into the mirror spreadsheet (the default)
  - get, to download the source range as a TSV file
  - put, to upload a TSV file to the mirror range
  - version, to display the application version

Spreadsheet access goes either through the 'gog' command line tool (the default, with
credential management delegated to gog) or directly through the Google Sheets API.
*/
package cpfrsync
