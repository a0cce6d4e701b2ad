/*
Delete stale remote branches, one by one.

  git-cleaner PATH

Description

The remote branches of the repository in PATH are listed using git for-each-ref,
sorted by the committer date so that the stalest branches come first.
Every branch is presented together with the last commit info and the user
decides whether it should be deleted.

Steps

This command goes through the following steps:

  1. Make sure PATH is a directory.
  2. List the remote branches, dropping <remote>/HEAD and excluded branches.
  3. For every branch, ask whether to delete it, skip it or exit.
  4. Delete the chosen branch after the exact command is confirmed,
     both in the remote and locally.
  5. Print how many branches were processed and deleted.

A malformed line in the branch listing aborts the session,
unless -skip_malformed is set or skip_malformed is enabled in the config.
*/
package pruneCmd
